package code

// Message map per error code
var codeMessageMap = map[int]string{
	// Common
	ErrSuccess:      "sucesso",
	ErrUnknown:      "erro desconhecido",
	ErrBind:         "erro ao interpretar os parâmetros da requisição",
	ErrValidation:   "erro de validação dos parâmetros",
	ErrTokenInvalid: "token de autenticação inválido",

	ErrTooManyRequests: "frequência de requisições alta demais",

	// Usuario
	ErrUsuarioNotFound:          "usuário não encontrado",
	ErrUsuarioAlreadyExist:      "usuário já cadastrado",
	ErrUsuarioPasswordIncorrect: "e-mail ou senha inválidos",

	// Familia / Endereco
	ErrFamiliaNotFound:  "família não encontrada",
	ErrEnderecoNotFound: "endereço não encontrado",
	ErrEnderecoInUse:    "endereço vinculado a uma família não pode ser excluído",

	// Responsavel
	ErrResponsavelNotFound:           "responsável não encontrado",
	ErrResponsavelPrincipalDuplicado: "já existe um responsável principal cadastrado para esta família",

	// MembroFamilia
	ErrMembroNotFound: "membro não encontrado ou inativo",
	ErrFotoInvalida:   "arquivo de foto inválido",

	// Turma
	ErrTurmaNotFound:    "turma não encontrada",
	ErrTurmaFaixaEtaria: "a idade mínima deve ser menor que a idade máxima",

	// Encontro / Presenca
	ErrEncontroNotFound:      "encontro não encontrado",
	ErrEncontroDataDuplicada: "já existe um encontro cadastrado nesta data",
	ErrPresencaNotFound:      "presença não encontrada",

	// EntregaCesta
	ErrEntregaNotFound:     "entrega não encontrada",
	ErrEntregaMesDuplicada: "já existe uma entrega de cesta para esta família neste mês",

	// ConfiguracaoSistema
	ErrConfiguracaoNotFound:       "configuração não encontrada",
	ErrConfiguracaoChaveDuplicada: "já existe uma configuração com esta chave",

	// Database
	ErrDatabase:       "erro de banco de dados",
	ErrRecordNotFound: "registro não encontrado",
}

// HTTP status map per error code
var codeStatusMap = map[int]int{
	// Common
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,

	// Usuario
	ErrUsuarioNotFound:          StatusNotFound,
	ErrUsuarioAlreadyExist:      StatusBadRequest,
	ErrUsuarioPasswordIncorrect: StatusUnauthorized,

	// Familia / Endereco
	ErrFamiliaNotFound:  StatusNotFound,
	ErrEnderecoNotFound: StatusNotFound,
	ErrEnderecoInUse:    StatusBadRequest,

	// Responsavel
	ErrResponsavelNotFound:           StatusNotFound,
	ErrResponsavelPrincipalDuplicado: StatusBadRequest,

	// MembroFamilia
	ErrMembroNotFound: StatusNotFound,
	ErrFotoInvalida:   StatusBadRequest,

	// Turma
	ErrTurmaNotFound:    StatusNotFound,
	ErrTurmaFaixaEtaria: StatusBadRequest,

	// Encontro / Presenca
	ErrEncontroNotFound:      StatusNotFound,
	ErrEncontroDataDuplicada: StatusBadRequest,
	ErrPresencaNotFound:      StatusNotFound,

	// EntregaCesta
	ErrEntregaNotFound:     StatusNotFound,
	ErrEntregaMesDuplicada: StatusBadRequest,

	// ConfiguracaoSistema
	ErrConfiguracaoNotFound:       StatusNotFound,
	ErrConfiguracaoChaveDuplicada: StatusBadRequest,

	// Database
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage returns the message for a code
func GetMessage(code int) string {
	if msg, ok := codeMessageMap[code]; ok {
		return msg
	}
	return "erro desconhecido"
}

// GetStatus returns the HTTP status for a code
func GetStatus(code int) int {
	if status, ok := codeStatusMap[code]; ok {
		return status
	}
	return StatusInternalServerError
}
