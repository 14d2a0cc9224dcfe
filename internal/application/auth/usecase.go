package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/estoque-restaurante/estoque-api/internal/application/dto"
	"github.com/estoque-restaurante/estoque-api/internal/domain"
	"github.com/estoque-restaurante/estoque-api/internal/domain/entity"
	"github.com/estoque-restaurante/estoque-api/internal/domain/repository"
	"github.com/estoque-restaurante/estoque-api/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação: registro, login e verificação.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Registrar cria um usuário com role padrão: faz hash da senha com bcrypt e
// persiste. Username duplicado vira ErrDuplicate.
func (uc *AuthUseCase) Registrar(ctx context.Context, in dto.RegistrarRequest) (*entity.Usuario, error) {
	nome := strings.TrimSpace(in.Nome)
	username := strings.TrimSpace(in.Username)
	if nome == "" || username == "" || in.Senha == "" {
		return nil, fmt.Errorf("nome, usuário e senha são obrigatórios: %w", domain.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash de senha: %w", err)
	}
	usuario := &entity.Usuario{
		Nome:      nome,
		Username:  username,
		SenhaHash: string(hash),
		Role:      entity.RoleUser,
	}
	if err := uc.usuarioRepo.Create(ctx, usuario); err != nil {
		return nil, err
	}
	return usuario, nil
}

// Login verifica username/senha e gera um JWT assinado com expiração.
// Credenciais ruins viram ErrUnauthorized sem distinguir usuário de senha.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*entity.Usuario, string, error) {
	if in.Username == "" || in.Senha == "" {
		return nil, "", fmt.Errorf("usuário e senha são obrigatórios: %w", domain.ErrInvalidInput)
	}
	usuario, err := uc.usuarioRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", domain.ErrUnauthorized
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(in.Senha)); err != nil {
		return nil, "", domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.Username, usuario.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, "", err
	}
	return usuario, token, nil
}

// Verificar resolve o id do token de volta ao usuário persistido.
// Usuário removido depois da emissão do token vira ErrUnauthorized.
func (uc *AuthUseCase) Verificar(ctx context.Context, usuarioID int64) (*entity.Usuario, error) {
	usuario, err := uc.usuarioRepo.GetByID(ctx, usuarioID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	return usuario, nil
}

// ToUsuarioResponse converte a entidade para a representação JSON (sem senha).
func ToUsuarioResponse(u *entity.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{ID: u.ID, Nome: u.Nome, Username: u.Username, Role: u.Role}
}
