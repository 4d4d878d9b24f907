package auth

import (
	"github.com/jhoicas/facturas-api/internal/application/dto"
	"github.com/jhoicas/facturas-api/internal/domain/entity"
	"github.com/jhoicas/facturas-api/internal/domain/repository"
	"github.com/jhoicas/facturas-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación: login contra el directorio de usuarios.
// No hay registro ni cambio de contraseña: el directorio se administra fuera
// del sistema y aquí solo se compara la credencial tal cual está almacenada.
type AuthUseCase struct {
	usuarios repository.UsuarioDirectory
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(usuarios repository.UsuarioDirectory, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarios: usuarios, jwtCfg: jwtCfg}
}

// Login verifica username/password por coincidencia exacta, genera el JWT de
// sesión (con rol y locales en los claims) y retorna token + usuario.
// Devuelve domain.ErrCredencialesInvalidas si no hay coincidencia.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.usuarios.FindByCredentials(in.Username, in.Password)
	if err != nil {
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Username, user.RolEfectivo(), user.Locales, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Usuario: *toUsuarioResponse(user),
	}, nil
}

// Me devuelve la entrada vigente del directorio para el usuario de la sesión.
// El directorio se relee: si el administrador cambió el rol o los locales, la
// respuesta lo refleja aunque el token siga llevando la sesión original.
// Devuelve domain.ErrNotFound si la entrada fue eliminada del directorio.
func (uc *AuthUseCase) Me(username string) (*dto.UsuarioResponse, error) {
	user, err := uc.usuarios.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	return toUsuarioResponse(user), nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	if u == nil {
		return nil
	}
	locales := u.Locales
	if locales == nil {
		locales = []string{}
	}
	return &dto.UsuarioResponse{
		Username: u.Username,
		Rol:      u.RolEfectivo(),
		Locales:  locales,
	}
}
