package sqlrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/pkg/errors"

	"pet-health-tracker/internal/domain/activities"
)

type ActivitiesRepo struct {
	db        *sql.DB
	sessionID string
}

func NewActivitiesRepo(db *sql.DB, sessionID string) *ActivitiesRepo {
	return &ActivitiesRepo{db: db, sessionID: sessionID}
}

func (r *ActivitiesRepo) Append(ctx context.Context, a activities.Activity) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO session_activities (session_id, id, pet_id, type, details, ts)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		r.sessionID,
		a.ID,
		a.PetID,
		string(a.Type),
		a.Details,
		a.Timestamp.UnixNano(),
	)
	return errors.Wrap(err, "insert activity")
}

// List devuelve el store en orden de alta. El orden por mascota/recencia
// lo resuelve activities.View, igual que con el backend en memoria.
func (r *ActivitiesRepo) List(ctx context.Context) ([]activities.Activity, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, pet_id, type, details, ts
		FROM session_activities
		WHERE session_id = $1
		ORDER BY id ASC
	`, r.sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "list activities")
	}
	defer rows.Close()

	out := make([]activities.Activity, 0)
	for rows.Next() {
		var a activities.Activity
		var typ string
		var ts int64
		if err := rows.Scan(&a.ID, &a.PetID, &typ, &a.Details, &ts); err != nil {
			return nil, errors.Wrap(err, "scan activity")
		}
		a.Type = activities.Category(typ)
		a.Timestamp = time.Unix(0, ts).UTC()
		out = append(out, a)
	}

	return out, errors.Wrap(rows.Err(), "list activities")
}
