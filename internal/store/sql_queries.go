// SPDX-License-Identifier: Apache-2.0

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/cotacoes-epc/go-quote-keeper/models"
)

const (
	createUser = `INSERT INTO users (name, email, password_hash, initial_letter, registration_code, is_active)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING user_id, name, email, password_hash, initial_letter, registration_code, created_at, is_active;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, initial_letter, registration_code, created_at, is_active
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, name, email, password_hash, initial_letter, registration_code, created_at, is_active
    FROM users
    WHERE user_id = $1;`
)

const (
	countRegistrations = `SELECT count(*) FROM allowed_registrations;`

	insertRegistrationCode = `INSERT INTO allowed_registrations (registration_number, is_used)
    VALUES ($1, false);`

	findRegistrationByCode = `SELECT registration_id, registration_number, is_used, used_by_user_id, created_at, used_at
    FROM allowed_registrations
    WHERE registration_number = $1;`

	// The WHERE is_used = false clause makes redemption a compare-and-swap:
	// of two concurrent redeemers of the same code exactly one update
	// reports an affected row.
	redeemRegistrationCode = `UPDATE allowed_registrations
    SET is_used = true, used_by_user_id = $2, used_at = now()
    WHERE registration_number = $1 AND is_used = false;`
)

// quoteItemColumns is the full column list of the services/inputs tables,
// in scan order.
const quoteItemColumns = `id, user_id, original_id, item, unit,
		price_fornecedor, preco_montagem, preco_adotado,
		media_adotada, media_saneada, menor_valor, media_aritmetica, mediana,
		empresa1, empresa2, empresa3, empresa4, empresa5, empresa6,
		justificativa, tempo_passado, mes_anterior, indice_anterior, indice_atual,
		created_at, updated_at`

// Quote item query templates. The %s placeholder is the table name of the
// collection ("services" or "inputs"), fixed at repository construction.
const (
	createQuoteItemTemplate = `INSERT INTO %s (user_id, original_id, item, unit,
		price_fornecedor, preco_montagem, preco_adotado,
		media_adotada, media_saneada, menor_valor, media_aritmetica, mediana,
		empresa1, empresa2, empresa3, empresa4, empresa5, empresa6,
		justificativa, tempo_passado, mes_anterior, indice_anterior, indice_atual)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
    RETURNING ` + quoteItemColumns + `;`

	getAllQuoteItemsTemplate = `SELECT ` + quoteItemColumns + `
    FROM %s
    WHERE user_id = $1
    ORDER BY created_at DESC;`

	getQuoteItemByIDTemplate = `SELECT ` + quoteItemColumns + `
    FROM %s
    WHERE id = $1 AND user_id = $2;`

	updateQuoteItemTemplate = `UPDATE %s SET
		original_id = $3, item = $4, unit = $5,
		price_fornecedor = $6, preco_montagem = $7, preco_adotado = $8,
		media_adotada = $9, media_saneada = $10, menor_valor = $11, media_aritmetica = $12, mediana = $13,
		empresa1 = $14, empresa2 = $15, empresa3 = $16, empresa4 = $17, empresa5 = $18, empresa6 = $19,
		justificativa = $20, tempo_passado = $21, mes_anterior = $22, indice_anterior = $23, indice_atual = $24,
		updated_at = now()
    WHERE id = $1 AND user_id = $2
    RETURNING ` + quoteItemColumns + `;`

	deleteQuoteItemTemplate = `DELETE FROM %s
    WHERE id = $1 AND user_id = $2;`
)

const (
	spreadsheetColumns = `id, user_id, name, description, file_path, file_type, file_size,
		is_shared, shared_at, created_at, updated_at`

	createSpreadsheet = `INSERT INTO spreadsheets (user_id, name, description, file_path, file_type, file_size, is_shared, shared_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING ` + spreadsheetColumns + `;`

	getSpreadsheetByID = `SELECT ` + spreadsheetColumns + `
    FROM spreadsheets
    WHERE id = $1 AND user_id = $2;`

	updateSpreadsheet = `UPDATE spreadsheets SET
		name = $3, description = $4, file_path = $5, file_type = $6, file_size = $7,
		is_shared = $8, shared_at = $9, updated_at = now()
    WHERE id = $1 AND user_id = $2
    RETURNING ` + spreadsheetColumns + `;`

	deleteSpreadsheet = `DELETE FROM spreadsheets
    WHERE id = $1 AND user_id = $2;`
)

// buildSpreadsheetListQuery assembles the dynamic listing query: owner scope
// always applies; search, category filter and sort order are appended on
// demand.
func buildSpreadsheetListQuery(userID int64, filter models.SpreadsheetFilter) (string, []any, error) {
	builder := sq.Select(
		"id", "user_id", "name", "description", "file_path", "file_type", "file_size",
		"is_shared", "shared_at", "created_at", "updated_at",
	).
		From("spreadsheets").
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(sq.Dollar)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"description": pattern},
		})
	}

	if filter.SharedOnly {
		builder = builder.Where(sq.Eq{"is_shared": true})
	}

	switch filter.Sort {
	case "antigos":
		builder = builder.OrderBy("created_at ASC")
	default: // "recentes" and anything else
		builder = builder.OrderBy("created_at DESC")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

const (
	countQuoteItemsTemplate = `SELECT count(*) FROM %s WHERE user_id = $1;`

	countSpreadsheets = `SELECT count(*) FROM spreadsheets WHERE user_id = $1;`

	recentQuoteItemsTemplate = `SELECT t.id, t.original_id, t.item, t.preco_adotado, t.created_at, u.name
    FROM %s t
    JOIN users u ON u.user_id = t.user_id
    WHERE t.user_id = $1
    ORDER BY t.created_at DESC
    LIMIT 3;`

	recentSpreadsheets = `SELECT s.id, s.name, coalesce(s.file_path, ''), s.created_at, u.name
    FROM spreadsheets s
    JOIN users u ON u.user_id = s.user_id
    WHERE s.user_id = $1
    ORDER BY s.created_at DESC
    LIMIT 3;`

	// Averages over empty collections come back NULL; coalesce reports them
	// as zero the way the dashboard expects.
	priceStatsTemplate = `SELECT coalesce(sum(preco_adotado), 0), coalesce(avg(preco_adotado), 0)
    FROM %s
    WHERE user_id = $1;`
)
