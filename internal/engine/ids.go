package engine

import "sensei/internal/diag"

// Diagnostic IDs the engine can emit. The human-readable titles and message
// formats for these live in internal/catalog's embedded table; the engine only
// deals in IDs, spans, and message arguments.
const (
	// Identifier catalog / rule fields.
	IDMissingID            diag.ID = "MissingId"
	IDMissingRule          diag.ID = "MissingRule"
	IDInternalAndStatic    diag.ID = "InternalAndStaticError"
	IDEnabledByDefault     diag.ID = "EnabledByDefaultError"
	IDDefaultSeverity      diag.ID = "DefaultSeverityError"
	IDIDStringLiteral      diag.ID = "IdStringLiteral"
	IDMissingIDDeclaration diag.ID = "MissingIdDeclaration"
	IDTitleError           diag.ID = "TitleError"
	IDMessageError         diag.ID = "MessageError"
	IDCategoryError        diag.ID = "CategoryError"

	// Registration accessor.
	IDMissingSuppDiag         diag.ID = "MissingSuppDiag"
	IDIncorrectSigSuppDiag    diag.ID = "IncorrectSigSuppDiag"
	IDMissingAccessor         diag.ID = "MissingAccessor"
	IDTooManyAccessors        diag.ID = "TooManyAccessors"
	IDIncorrectAccessorReturn diag.ID = "IncorrectAccessorReturn"
	IDSuppDiagReturnValue     diag.ID = "SuppDiagReturnValue"
	IDSupportedRules          diag.ID = "SupportedRules"

	// Initialize.
	IDMissingInit              diag.ID = "MissingInit"
	IDIncorrectInitSig         diag.ID = "IncorrectInitSig"
	IDMissingRegisterStatement diag.ID = "MissingRegisterStatement"
	IDTooManyInitStatements    diag.ID = "TooManyInitStatements"
	IDInvalidStatement         diag.ID = "InvalidStatement"
	IDIncorrectRegister        diag.ID = "IncorrectRegister"
	IDIncorrectArguments       diag.ID = "IncorrectArguments"
	IDIncorrectKind            diag.ID = "IncorrectKind"

	// Analysis method.
	IDMissingAnalysisMethod  diag.ID = "MissingAnalysisMethod"
	IDIncorrectAccessibility diag.ID = "IncorrectAnalysisAccessibility"
	IDIncorrectReturnType    diag.ID = "IncorrectAnalysisReturnType"
	IDIncorrectParameter     diag.ID = "IncorrectAnalysisParameter"

	// Staged body.
	IDIfStatementMissing           diag.ID = "IfStatementMissing"
	IDIfStatementIncorrect         diag.ID = "IfStatementIncorrect"
	IDIfKeywordMissing             diag.ID = "IfKeywordMissing"
	IDIfKeywordIncorrect           diag.ID = "IfKeywordIncorrect"
	IDTrailingTriviaCheckMissing   diag.ID = "TrailingTriviaCheckMissing"
	IDTrailingTriviaCheckIncorrect diag.ID = "TrailingTriviaCheckIncorrect"
	IDTrailingTriviaVarMissing     diag.ID = "TrailingTriviaVarMissing"
	IDTrailingTriviaVarIncorrect   diag.ID = "TrailingTriviaVarIncorrect"
	IDTrailingTriviaCountMissing   diag.ID = "TrailingTriviaCountMissing"
	IDTrailingTriviaCountIncorrect diag.ID = "TrailingTriviaCountIncorrect"
	IDTriviaKindCheckMissing       diag.ID = "TrailingTriviaKindCheckMissing"
	IDTriviaKindCheckIncorrect     diag.ID = "TrailingTriviaKindCheckIncorrect"
	IDWhitespaceCheckMissing       diag.ID = "WhitespaceCheckMissing"
	IDWhitespaceCheckIncorrect     diag.ID = "WhitespaceCheckIncorrect"
	IDReturnStatementMissing       diag.ID = "ReturnStatementMissing"
	IDReturnStatementIncorrect     diag.ID = "ReturnStatementIncorrect"
	IDTooManyStatements            diag.ID = "TooManyStatements"
	IDOpenParenMissing             diag.ID = "OpenParenMissing"
	IDOpenParenIncorrect           diag.ID = "OpenParenIncorrect"
	IDStartSpanMissing             diag.ID = "StartSpanMissing"
	IDStartSpanIncorrect           diag.ID = "StartSpanIncorrect"
	IDEndSpanMissing               diag.ID = "EndSpanMissing"
	IDEndSpanIncorrect             diag.ID = "EndSpanIncorrect"
	IDSpanMissing                  diag.ID = "SpanMissing"
	IDSpanIncorrect                diag.ID = "SpanIncorrect"
	IDLocationMissing              diag.ID = "LocationMissing"
	IDLocationIncorrect            diag.ID = "LocationIncorrect"
	IDDiagnosticMissing            diag.ID = "DiagnosticMissing"
	IDDiagnosticIncorrect          diag.ID = "DiagnosticIncorrect"
	IDDiagnosticReportMissing      diag.ID = "DiagnosticReportMissing"
	IDDiagnosticReportIncorrect    diag.ID = "DiagnosticReportIncorrect"

	// Terminal success.
	IDComplete diag.ID = "Complete"
)

// AllIDs lists every diagnostic ID the engine can emit, in rough tutorial
// order. The catalog test cross-checks this against the embedded table.
var AllIDs = []diag.ID{
	IDMissingID, IDMissingRule, IDInternalAndStatic, IDEnabledByDefault,
	IDDefaultSeverity, IDIDStringLiteral, IDMissingIDDeclaration,
	IDTitleError, IDMessageError, IDCategoryError,
	IDMissingSuppDiag, IDIncorrectSigSuppDiag, IDMissingAccessor,
	IDTooManyAccessors, IDIncorrectAccessorReturn, IDSuppDiagReturnValue,
	IDSupportedRules,
	IDMissingInit, IDIncorrectInitSig, IDMissingRegisterStatement,
	IDTooManyInitStatements, IDInvalidStatement, IDIncorrectRegister,
	IDIncorrectArguments, IDIncorrectKind,
	IDMissingAnalysisMethod, IDIncorrectAccessibility, IDIncorrectReturnType,
	IDIncorrectParameter,
	IDIfStatementMissing, IDIfStatementIncorrect, IDIfKeywordMissing,
	IDIfKeywordIncorrect, IDTrailingTriviaCheckMissing,
	IDTrailingTriviaCheckIncorrect, IDTrailingTriviaVarMissing,
	IDTrailingTriviaVarIncorrect, IDTrailingTriviaCountMissing,
	IDTrailingTriviaCountIncorrect, IDTriviaKindCheckMissing,
	IDTriviaKindCheckIncorrect, IDWhitespaceCheckMissing,
	IDWhitespaceCheckIncorrect, IDReturnStatementMissing,
	IDReturnStatementIncorrect, IDTooManyStatements,
	IDOpenParenMissing, IDOpenParenIncorrect, IDStartSpanMissing,
	IDStartSpanIncorrect, IDEndSpanMissing, IDEndSpanIncorrect,
	IDSpanMissing, IDSpanIncorrect, IDLocationMissing, IDLocationIncorrect,
	IDDiagnosticMissing, IDDiagnosticIncorrect, IDDiagnosticReportMissing,
	IDDiagnosticReportIncorrect,
	IDComplete,
}
