package postgres

import (
	"context"

	"fnbpos/internal/core/domain/model/fnb"

	"gorm.io/gorm"
)

// branchesTable is created by the multi-branch extension of the backend.
const branchesTable = "branches"

// GormCapabilityProbe implements ports.CapabilityProbe by inspecting the schema.
// Every call queries the database again.
type GormCapabilityProbe struct {
	db *gorm.DB
}

// NewGormCapabilityProbe creates a probe over db.
func NewGormCapabilityProbe(db *gorm.DB) *GormCapabilityProbe {
	return &GormCapabilityProbe{db: db}
}

// Probe reports whether the branch API is available.
func (p *GormCapabilityProbe) Probe(ctx context.Context) (fnb.Capabilities, error) {
	if err := ctx.Err(); err != nil {
		return fnb.Capabilities{}, err
	}
	return fnb.Capabilities{
		BranchAPI: p.db.WithContext(ctx).Migrator().HasTable(branchesTable),
	}, nil
}
