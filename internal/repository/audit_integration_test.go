package repository_test

import (
	"testing"
	"time"

	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/domain/audit"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/repository"
	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditRepo_Integration(t *testing.T) {
	db, cleanup := testutils.SetupPostgresForIntegration(t)
	defer cleanup()

	repos := repository.NewRepositories(db)
	repo := repos.Audit

	entries := []*audit.AuditLog{
		{ActorID: 1, Action: audit.ActionStatusChange, ResourceType: "contact", ResourceID: 10},
		{ActorID: 1, Action: audit.ActionDelete, ResourceType: "contact", ResourceID: 11},
		{ActorID: 2, Action: audit.ActionStatusChange, ResourceType: "appointment", ResourceID: 12},
	}
	for _, e := range entries {
		require.NoError(t, repo.CreateAuditLog(e))
	}

	t.Run("filter by actor", func(t *testing.T) {
		actor := uint(1)
		logs, err := repo.GetAuditLogs(repository.AuditQueryParams{ActorID: &actor})
		assert.NoError(t, err)
		assert.Len(t, logs, 2)
	})

	t.Run("filter by resource type and action", func(t *testing.T) {
		rt := "contact"
		act := audit.ActionDelete
		logs, err := repo.GetAuditLogs(repository.AuditQueryParams{ResourceType: &rt, Action: &act})
		assert.NoError(t, err)
		assert.Len(t, logs, 1)
		assert.Equal(t, uint(11), logs[0].ResourceID)
	})

	t.Run("cleanup drops only expired entries", func(t *testing.T) {
		stale := &audit.AuditLog{ActorID: 3, Action: audit.ActionDelete, ResourceType: "contact", ResourceID: 13}
		require.NoError(t, repo.CreateAuditLog(stale))
		require.NoError(t, db.Model(&audit.AuditLog{}).
			Where("id = ?", stale.ID).
			UpdateColumn("created_at", time.Now().AddDate(0, 0, -120)).Error)

		assert.NoError(t, repo.DeleteOldAuditLogs(90))

		logs, err := repo.GetAuditLogs(repository.AuditQueryParams{})
		assert.NoError(t, err)
		assert.Len(t, logs, 3, "recent entries survive the purge")
	})
}
