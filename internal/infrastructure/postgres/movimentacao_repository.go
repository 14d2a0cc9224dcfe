package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/estoque-restaurante/estoque-api/internal/domain/entity"
	"github.com/estoque-restaurante/estoque-api/internal/domain/repository"
)

var _ repository.MovimentacaoRepository = (*MovimentacaoRepo)(nil)

// MovimentacaoRepo implementação do histórico sobre PostgreSQL (usável com pool ou tx).
type MovimentacaoRepo struct {
	q Querier
}

// NewMovimentacaoRepository constrói o adaptador do histórico. Passar pool ou tx (Querier).
func NewMovimentacaoRepository(q Querier) *MovimentacaoRepo {
	return &MovimentacaoRepo{q: q}
}

// Create insere um registro no histórico. O histórico nunca é alterado depois.
func (r *MovimentacaoRepo) Create(ctx context.Context, mov *entity.Movimentacao) error {
	if mov.ID == "" {
		mov.ID = uuid.New().String()
	}
	query := `
		INSERT INTO historico_movimentacoes
			(id, produto_id, usuario_id, tipo, quantidade_anterior, quantidade_nova, descricao)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`
	err := r.q.QueryRow(ctx, query,
		mov.ID, mov.ProdutoID, mov.UsuarioID, mov.Tipo,
		mov.QuantidadeAnterior, mov.QuantidadeNova, mov.Descricao,
	).Scan(&mov.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert movimentacao: %w", err)
	}
	return nil
}

// List lista o histórico com filtros opcionais, mais recente primeiro.
// Produto e usuário são resolvidos via LEFT JOIN: ambos podem ter sido
// removidos e nesse caso os nomes vêm vazios.
func (r *MovimentacaoRepo) List(ctx context.Context, filtro repository.MovimentacaoFiltro, limit, offset int) ([]*entity.Movimentacao, int, error) {
	where := ""
	args := []any{}
	pos := 1
	if filtro.ProdutoID != 0 {
		where += fmt.Sprintf(" AND h.produto_id = $%d", pos)
		args = append(args, filtro.ProdutoID)
		pos++
	}
	if filtro.UsuarioID != 0 {
		where += fmt.Sprintf(" AND h.usuario_id = $%d", pos)
		args = append(args, filtro.UsuarioID)
		pos++
	}
	if filtro.Tipo != "" {
		where += fmt.Sprintf(" AND h.tipo = $%d", pos)
		args = append(args, filtro.Tipo)
		pos++
	}

	var total int
	countQuery := `SELECT COUNT(*) FROM historico_movimentacoes h WHERE 1=1` + where
	if err := r.q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count historico: %w", err)
	}

	query := `
		SELECT h.id, h.produto_id, h.usuario_id, h.tipo,
		       h.quantidade_anterior, h.quantidade_nova, h.descricao, h.created_at,
		       p.nome, u.nome, u.username
		FROM historico_movimentacoes h
		LEFT JOIN produtos p ON h.produto_id = p.id
		LEFT JOIN usuarios u ON h.usuario_id = u.id
		WHERE 1=1` + where +
		fmt.Sprintf(" ORDER BY h.created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listar historico: %w", err)
	}
	defer rows.Close()

	list := []*entity.Movimentacao{}
	for rows.Next() {
		var m entity.Movimentacao
		var produtoNome, usuarioNome, usuarioUsername *string
		if err := rows.Scan(
			&m.ID, &m.ProdutoID, &m.UsuarioID, &m.Tipo,
			&m.QuantidadeAnterior, &m.QuantidadeNova, &m.Descricao, &m.CreatedAt,
			&produtoNome, &usuarioNome, &usuarioUsername,
		); err != nil {
			return nil, 0, fmt.Errorf("scan movimentacao: %w", err)
		}
		if produtoNome != nil {
			m.ProdutoNome = *produtoNome
		}
		if usuarioNome != nil {
			m.UsuarioNome = *usuarioNome
		}
		if usuarioUsername != nil {
			m.UsuarioUsername = *usuarioUsername
		}
		list = append(list, &m)
	}
	return list, total, rows.Err()
}
