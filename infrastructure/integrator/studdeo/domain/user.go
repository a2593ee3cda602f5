package studdeodomain

// TokenResponse es la respuesta del endpoint de token del core
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// TokenPayload son los claims que el core afirma dentro de su token. Se
// decodifican sin verificar la firma: la frontera de confianza es del core.
type TokenPayload struct {
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Expire   int64  `json:"expire"`
}

type CreateUserParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type CreatedUser struct {
	ExternalReference int    `json:"external_reference"`
	Email             string `json:"email"`
	Role              string `json:"role"`
}
