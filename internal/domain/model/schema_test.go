package model_test

import (
	"sync"
	"testing"

	"storefront/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func parseSchema(t *testing.T, v any) *schema.Schema {
	t.Helper()
	s, err := schema.Parse(v, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)
	return s
}

// default:true だとCreate時にfalseが省かれてDB側でtrueになる
func TestSchema_IsActiveHasNoDefault(t *testing.T) {
	for name, v := range map[string]any{
		"product": &model.Product{},
		"user":    &model.User{},
	} {
		t.Run(name, func(t *testing.T) {
			f := parseSchema(t, v).LookUpField("IsActive")
			require.NotNil(t, f)
			assert.False(t, f.HasDefaultValue)
			assert.True(t, f.NotNull)
		})
	}
}

func TestSchema_CatalogHasPositionColumn(t *testing.T) {
	for name, v := range map[string]any{
		"product":  &model.Product{},
		"category": &model.Category{},
	} {
		t.Run(name, func(t *testing.T) {
			f := parseSchema(t, v).LookUpField("position")
			require.NotNil(t, f)
			assert.Equal(t, "position", f.DBName)
		})
	}
}
