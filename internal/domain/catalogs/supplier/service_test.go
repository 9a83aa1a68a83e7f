package supplier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"ferreo/internal/core/apperror"
)

// fakeRepo answers tax-id lookups from a map; the embedded interface
// covers the catalog methods the tests never reach.
type fakeRepo struct {
	Repository
	byTaxID map[string]*Supplier
}

func (f *fakeRepo) GetByTaxID(_ context.Context, taxID string) (*Supplier, error) {
	sp, ok := f.byTaxID[taxID]
	if !ok {
		return &Supplier{}, apperror.NewNotFound("cat_suppliers", taxID)
	}
	return sp, nil
}

func portalSupplier(t *testing.T, taxID, accessCode string) *Supplier {
	t.Helper()

	sp := NewSupplier("PRV-00001", "Aceros del Sur", "Aceros del Sur S.A.")
	sp.TaxID = &taxID

	if accessCode != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(accessCode), bcrypt.MinCost)
		require.NoError(t, err)
		sp.AccessCodeHash = string(hash)
	}
	return sp
}

func newVerifierService(suppliers ...*Supplier) *Service {
	repo := &fakeRepo{byTaxID: map[string]*Supplier{}}
	for _, sp := range suppliers {
		repo.byTaxID[*sp.TaxID] = sp
	}
	return NewService(repo, nil, nil)
}

func TestVerifyAccessCode_AuthenticatesByTaxID(t *testing.T) {
	ctx := context.Background()
	sp := portalSupplier(t, "30-71234567-8", "portal-123")
	svc := newVerifierService(sp)

	got, err := svc.VerifyAccessCode(ctx, "30-71234567-8", "portal-123")
	require.NoError(t, err)
	assert.Equal(t, sp.ID, got.ID)
}

func TestVerifyAccessCode_RejectsUnknownTaxID(t *testing.T) {
	ctx := context.Background()
	svc := newVerifierService(portalSupplier(t, "30-71234567-8", "portal-123"))

	_, err := svc.VerifyAccessCode(ctx, "20-99999999-9", "portal-123")
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)
}

func TestVerifyAccessCode_RejectsWrongCode(t *testing.T) {
	ctx := context.Background()
	svc := newVerifierService(portalSupplier(t, "30-71234567-8", "portal-123"))

	_, err := svc.VerifyAccessCode(ctx, "30-71234567-8", "wrong")
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)
}

func TestVerifyAccessCode_RejectsDisabledPortal(t *testing.T) {
	ctx := context.Background()
	svc := newVerifierService(portalSupplier(t, "30-71234567-8", ""))

	_, err := svc.VerifyAccessCode(ctx, "30-71234567-8", "portal-123")
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)
}
