package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jhoicas/sgi-guatemart/internal/domain"
	"github.com/jhoicas/sgi-guatemart/internal/domain/entity"
	"github.com/jhoicas/sgi-guatemart/internal/domain/repository"
	"github.com/jhoicas/sgi-guatemart/pkg/jwt"
	"github.com/jhoicas/sgi-guatemart/pkg/password"
)

// SessionConfig configuración para emitir la cookie de sesión firmada.
type SessionConfig struct {
	Secret   string
	Issuer   string
	Lifetime time.Duration
}

// LoginResult token de sesión firmado y la identidad que representa.
type LoginResult struct {
	Token    string
	Identity *Identity
}

// AuthUseCase casos de uso de autenticación: login y lectura de la sesión.
type AuthUseCase struct {
	userRepo repository.UserRepository
	cfg      SessionConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, cfg SessionConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, cfg: cfg}
}

// Login verifica usuario/contraseña contra el hash bcrypt de un usuario activo y emite la sesión.
// Credenciales incorrectas y usuarios inactivos devuelven ErrUnauthorized sin distinguir la causa.
func (uc *AuthUseCase) Login(ctx context.Context, username, plain string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || plain == "" {
		return nil, domain.NewValidationError("username", "Por favor ingrese usuario y contraseña")
	}
	user, err := uc.userRepo.GetActiveByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := password.Verify(user.PasswordHash, plain); err != nil {
		if errors.Is(err, password.ErrMismatch) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	identity := identityFromUser(user)
	token, err := uc.Issue(identity)
	if err != nil {
		return nil, err
	}
	// El último acceso es informativo: un fallo aquí no impide el login.
	_ = uc.userRepo.TouchLastAccess(ctx, user.ID)

	return &LoginResult{Token: token, Identity: identity}, nil
}

// Issue firma una sesión para la identidad.
func (uc *AuthUseCase) Issue(id *Identity) (string, error) {
	return jwt.Generate(uc.cfg.Secret, uc.cfg.Issuer, jwt.Session{
		UserID:      id.UserID,
		Username:    id.Username,
		DisplayName: id.DisplayName,
		Role:        id.RoleName,
		RoleID:      id.RoleID,
	}, uc.cfg.Lifetime)
}

// Authenticate valida el token de la cookie y reconstruye la identidad.
func (uc *AuthUseCase) Authenticate(token string) (*Identity, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}
	s, err := jwt.Parse(uc.cfg.Secret, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	return &Identity{
		UserID:      s.UserID,
		Username:    s.Username,
		DisplayName: s.DisplayName,
		RoleName:    s.Role,
		RoleID:      s.RoleID,
	}, nil
}

// Lifetime duración de la sesión emitida.
func (uc *AuthUseCase) Lifetime() time.Duration { return uc.cfg.Lifetime }

func identityFromUser(u *entity.User) *Identity {
	return &Identity{
		UserID:      u.ID,
		Username:    u.Username,
		DisplayName: u.FullName,
		RoleName:    u.RoleName,
		RoleID:      u.RoleID,
	}
}
