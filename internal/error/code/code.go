package code

// HTTP status codes.
const (
	// StatusOK - 200: sucesso.
	StatusOK = 200
	// StatusBadRequest - 400: parâmetros inválidos.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: não autenticado.
	StatusUnauthorized = 401
	// StatusForbidden - 403: acesso negado.
	StatusForbidden = 403
	// StatusNotFound - 404: recurso não encontrado.
	StatusNotFound = 404
	// StatusInternalServerError - 500: erro interno.
	StatusInternalServerError = 500
	// StatusTooManyRequests - 429: requisições em excesso.
	StatusTooManyRequests = 429
)

// Common error codes (100xxx).
const (
	// ErrSuccess - 200: sucesso.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: erro desconhecido.
	ErrUnknown
	// ErrBind - 400: erro ao interpretar os parâmetros da requisição.
	ErrBind
	// ErrValidation - 400: erro de validação dos parâmetros.
	ErrValidation
	// ErrTokenInvalid - 401: token inválido.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: frequência de requisições alta demais.
	ErrTooManyRequests
)

// Usuario error codes (101xxx).
const (
	// ErrUsuarioNotFound - 404: usuário não existe.
	ErrUsuarioNotFound int = iota + 101000
	// ErrUsuarioAlreadyExist - 400: usuário já existe.
	ErrUsuarioAlreadyExist
	// ErrUsuarioPasswordIncorrect - 401: senha incorreta.
	ErrUsuarioPasswordIncorrect
)

// Familia / Endereco error codes (102xxx).
const (
	// ErrFamiliaNotFound - 404: família não existe.
	ErrFamiliaNotFound int = iota + 102000
	// ErrEnderecoNotFound - 404: endereço não existe.
	ErrEnderecoNotFound
	// ErrEnderecoInUse - 400: endereço vinculado a uma família.
	ErrEnderecoInUse
)

// Responsavel error codes (103xxx).
const (
	// ErrResponsavelNotFound - 404: responsável não existe.
	ErrResponsavelNotFound int = iota + 103000
	// ErrResponsavelPrincipalDuplicado - 400: família já possui responsável principal.
	ErrResponsavelPrincipalDuplicado
)

// MembroFamilia error codes (104xxx).
const (
	// ErrMembroNotFound - 404: membro não existe ou está inativo.
	ErrMembroNotFound int = iota + 104000
	// ErrFotoInvalida - 400: arquivo de foto inválido.
	ErrFotoInvalida
)

// Turma error codes (105xxx).
const (
	// ErrTurmaNotFound - 404: turma não existe.
	ErrTurmaNotFound int = iota + 105000
	// ErrTurmaFaixaEtaria - 400: faixa etária inválida.
	ErrTurmaFaixaEtaria
)

// Encontro / Presenca error codes (106xxx).
const (
	// ErrEncontroNotFound - 404: encontro não existe.
	ErrEncontroNotFound int = iota + 106000
	// ErrEncontroDataDuplicada - 400: já existe encontro nesta data.
	ErrEncontroDataDuplicada
	// ErrPresencaNotFound - 404: presença não existe.
	ErrPresencaNotFound
)

// EntregaCesta error codes (107xxx).
const (
	// ErrEntregaNotFound - 404: entrega não existe.
	ErrEntregaNotFound int = iota + 107000
	// ErrEntregaMesDuplicada - 400: família já recebeu cesta neste mês.
	ErrEntregaMesDuplicada
)

// ConfiguracaoSistema error codes (108xxx).
const (
	// ErrConfiguracaoNotFound - 404: configuração não existe.
	ErrConfiguracaoNotFound int = iota + 108000
	// ErrConfiguracaoChaveDuplicada - 400: chave já cadastrada.
	ErrConfiguracaoChaveDuplicada
)

// Database error codes (109xxx).
const (
	// ErrDatabase - 500: erro de banco de dados.
	ErrDatabase int = iota + 109000
	// ErrRecordNotFound - 404: registro não existe.
	ErrRecordNotFound
)
