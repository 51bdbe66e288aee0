package service

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"miniattic-api/internal/config"
	"miniattic-api/internal/model"
	"miniattic-api/internal/repository"
)

type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	FindByAccount(ctx context.Context, account string) (*model.User, error)
}

// Claims del token; mismo contenido que firmaba el backend anterior.
type Claims struct {
	Account string `json:"account"`
	Access  int    `json:"access"`
	jwt.RegisteredClaims
}

// Servicio que firma y verifica tokens y maneja las cuentas.
type AuthService struct {
	users  UserRepository
	key    []byte
	ttl    time.Duration
	levels config.AccessLevels
	now    func() time.Time
}

func NewAuthService(users UserRepository, key string, ttl time.Duration, levels config.AccessLevels) *AuthService {
	return &AuthService{
		users:  users,
		key:    []byte(key),
		ttl:    ttl,
		levels: levels,
		now:    time.Now,
	}
}

// RoleFor traduce el nivel numérico del token a un rol.
func (a *AuthService) RoleFor(access int) Role {
	switch access {
	case a.levels.Administrator:
		return RoleAdmin
	case a.levels.Editor:
		return RoleEditor
	case a.levels.User:
		return RoleCustomer
	default:
		return RoleNone
	}
}

// Issue firma un token HS256 para la cuenta.
func (a *AuthService) Issue(account string, access int) (string, error) {
	claims := Claims{
		Account: account,
		Access:  access,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(a.now().Add(a.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.key)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	return token, nil
}

// Verify distingue token vencido, token inválido y cualquier otra falla.
func (a *AuthService) Verify(token string) (Viewer, error) {
	if token == "" {
		return Viewer{}, ErrAuthMissing
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return a.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(a.now))
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return Viewer{}, ErrAuthExpired
	case errors.Is(err, jwt.ErrTokenMalformed),
		errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable):
		return Viewer{}, ErrAuthInvalid
	default:
		return Viewer{}, errors.Wrap(err, "verify token")
	}

	v := Viewer{
		Account: claims.Account,
		Access:  claims.Access,
		Role:    a.RoleFor(claims.Access),
	}
	if claims.ExpiresAt != nil {
		v.ExpiresAt = claims.ExpiresAt.Time
	}
	return v, nil
}

type LoginResult struct {
	User  *model.User
	Role  Role
	Token string
}

// Login compara la contraseña y emite el token. Una cuenta sin rol conocido no entra.
func (a *AuthService) Login(ctx context.Context, account, password string) (*LoginResult, error) {
	u, err := a.users.FindByAccount(ctx, account)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, persistence("find user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	role := a.RoleFor(u.AccessRight)
	if role == RoleNone {
		return nil, ErrNoAccess
	}

	token, err := a.Issue(u.Account, u.AccessRight)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: u, Role: role, Token: token}, nil
}

type RegisterInput struct {
	Name     string
	Phone    string
	Account  string
	Password string
}

// Register crea la cuenta como cliente.
func (a *AuthService) Register(ctx context.Context, in RegisterInput) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hash password")
	}

	u := &model.User{
		Name:        in.Name,
		Phone:       in.Phone,
		Account:     in.Account,
		Password:    string(hash),
		AccessRight: a.levels.User,
	}
	return classify("create user", a.users.Create(ctx, u))
}
