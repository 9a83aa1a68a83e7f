package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ferreo/internal/core/entity"
)

type mockCatalog struct {
	entity.Catalog
	BusinessName string  `db:"business_name" json:"businessName"`
	TaxID        *string `db:"tax_id" json:"taxId,omitempty"`
	Lines        []int   `db:"-" json:"lines"`
}

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[mockCatalog]()

	expectedCols := []string{
		"id", "deletion_mark", "version", "code", "name", "business_name", "tax_id",
	}

	for _, expected := range expectedCols {
		assert.Contains(t, cols, expected)
	}
	assert.NotContains(t, cols, "-")
}

func TestStructToMap(t *testing.T) {
	taxID := "20304050607"
	cat := mockCatalog{
		Catalog:      entity.NewCatalog("CLI-00001", "Ferretería Norte"),
		BusinessName: "Ferretería Norte S.A.",
		TaxID:        &taxID,
		Lines:        []int{1, 2},
	}

	m := StructToMap(cat)

	assert.Equal(t, cat.ID, m["id"])
	assert.Equal(t, false, m["deletion_mark"])
	assert.Equal(t, 1, m["version"])
	assert.Equal(t, "CLI-00001", m["code"])
	assert.Equal(t, "Ferretería Norte", m["name"])
	assert.Equal(t, "Ferretería Norte S.A.", m["business_name"])
	assert.Equal(t, &taxID, m["tax_id"])
	assert.NotContains(t, m, "lines")
}

func TestStructToMap_PointerInput(t *testing.T) {
	cat := &mockCatalog{Catalog: entity.NewCatalog("X", "Y")}
	m := StructToMap(cat)
	assert.Equal(t, "X", m["code"])
}

func TestStructToMap_NonStruct(t *testing.T) {
	assert.Nil(t, StructToMap(42))
	assert.Nil(t, StructToMap("hello"))
}
