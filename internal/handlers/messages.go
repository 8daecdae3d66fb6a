package handlers

// Mensagens exibidas nos formulários, por código de erro de negócio.
var registerMessages = map[string]string{
	"registration_fields_required": "Preencha nome, e-mail e senha (mínimo 6 caracteres).",
	"email_already_registered":     "Este e-mail já está cadastrado.",
	"specialty_required":           "Você deve selecionar pelo menos uma especialidade.",
	"too_many_specialties":         "Você só pode selecionar no máximo 2 especialidades.",
	"invalid_specialty":            "Especialidade inválida.",
	"invalid_email_domain":         "O domínio do e-mail informado não parece ser válido.",
	"password_too_long":            "A senha deve ter no máximo 72 caracteres.",
}

var photoMessages = map[string]string{
	"upload_dir_failed": "Erro ao criar pasta de upload.",
	"invalid_file_name": "Erro: O arquivo enviado é inválido ou não tem nome/extensão.",
	"invalid_image":     "O arquivo enviado não é uma imagem válida.",
	"photo_save_failed": "Erro ao salvar a foto.",
}

// Mensagens das flags de query string (?error=..., ?success=true, ...).
var loginFlags = map[string]string{
	"codigo":  "Código de login não encontrado.",
	"senha":   "Senha incorreta.",
	"interno": msgInternal,
}

var resetFlags = map[string]string{
	"email-nao-encontrado": "Nenhum médico cadastrado com este e-mail.",
	"email":                "Não foi possível enviar o e-mail. Tente novamente.",
	"codigo-invalido":      "Código inválido.",
	"token-expirado":       "O código expirou. Solicite um novo.",
	"token-invalido":       "Código de redefinição inválido. Solicite um novo.",
	"senhas-nao-coincidem": "As senhas não coincidem.",
	"senha-invalida":       "A senha deve ter entre 6 e 72 caracteres.",
	"interno":              msgInternal,
}

var patientFlags = map[string]string{
	"nome-obrigatorio":        "O nome do paciente é obrigatório.",
	"idade-invalida":          "Idade inválida.",
	"paciente-nao-encontrado": "Paciente não encontrado.",
	"interno":                 msgInternal,
}
