package dto

// LoginRequest credenciales de inicio de sesión.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UsuarioResponse datos públicos del usuario autenticado (nunca la contraseña).
type UsuarioResponse struct {
	Username string   `json:"username"`
	Rol      string   `json:"rol"`
	Locales  []string `json:"locales"`
}

// LoginResponse token de sesión más los datos del usuario.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
