package i18n

var enUS = map[Code]string{
	"UNKNOWN":               "An unexpected error occurred",
	"UNAUTHORIZED":          "You are not allowed to perform this action",
	"UNAUTHENTICATED":       "A valid caller token is required",
	"ALREADY_VOTED":         "Guardian {{.Guardian}} already voted on proposal {{.ProposalID}}",
	"INVALID_CANDIDATE":     "The proposed owner must be a non-zero address",
	"EXCEEDS_ALLOWANCE":     "Amount {{.Amount}} exceeds the remaining allowance of {{.Remaining}}",
	"DATA_NOT_ALLOWED":      "Only the owner may send call data",
	"SELF_CALL_NOT_ALLOWED": "Only the owner may call the account itself",
	"DISPATCH_FAILED":       "The outgoing call failed",
	"INSUFFICIENT_FUNDS":    "Insufficient funds: balance {{.Balance}}, needed {{.Amount}}",
	"NOT_INITIALIZED":       "The account has not been initialized",
	"ALREADY_INITIALIZED":   "The account is already initialized",
	"INVALID_ARGUMENT":      "Invalid argument",
	"INVALID_ADDRESS":       "Invalid address {{.Address}}",
	"INVALID_AMOUNT":        "Invalid amount {{.Amount}}",
	"INVALID_FILTER":        "Invalid filter expression",
	"NOT_FOUND":             "Not found",
}

var ptBR = map[Code]string{
	"UNKNOWN":               "Ocorreu um erro inesperado",
	"UNAUTHORIZED":          "Você não tem permissão para executar esta ação",
	"UNAUTHENTICATED":       "Um token de chamador válido é obrigatório",
	"ALREADY_VOTED":         "O guardião {{.Guardian}} já votou na proposta {{.ProposalID}}",
	"INVALID_CANDIDATE":     "O novo dono proposto deve ser um endereço diferente de zero",
	"EXCEEDS_ALLOWANCE":     "O valor {{.Amount}} excede a permissão restante de {{.Remaining}}",
	"DATA_NOT_ALLOWED":      "Apenas o dono pode enviar dados de chamada",
	"SELF_CALL_NOT_ALLOWED": "Apenas o dono pode chamar a própria conta",
	"DISPATCH_FAILED":       "A chamada de saída falhou",
	"INSUFFICIENT_FUNDS":    "Saldo insuficiente: saldo {{.Balance}}, necessário {{.Amount}}",
	"NOT_INITIALIZED":       "A conta ainda não foi inicializada",
	"ALREADY_INITIALIZED":   "A conta já foi inicializada",
	"INVALID_ARGUMENT":      "Argumento inválido",
	"INVALID_ADDRESS":       "Endereço inválido {{.Address}}",
	"INVALID_AMOUNT":        "Valor inválido {{.Amount}}",
	"INVALID_FILTER":        "Expressão de filtro inválida",
	"NOT_FOUND":             "Não encontrado",
}
