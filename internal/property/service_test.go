package property_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kestrelpm/trustbooks/internal/property"
)

func TestService_Create(t *testing.T) {
	type testCase struct {
		name      string
		params    property.CreateParams
		setupMock func(m *property.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			params: property.CreateParams{
				Address:    "1 Test St",
				OwnerName:  "J. Owner",
				FeeBps:     850,
				TenantName: "A. Tenant",
			},
			setupMock: func(m *property.MockRepository) {
				m.EXPECT().CreateProperty(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "MissingAddress",
			params:  property.CreateParams{OwnerName: "J. Owner"},
			wantErr: property.ErrValidation,
		},
		{
			name:    "FeeOutOfRange",
			params:  property.CreateParams{Address: "1 Test St", FeeBps: 20000},
			wantErr: property.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := property.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := property.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, got.ID)
			assert.Equal(t, tt.params.Address, got.Address)
		})
	}
}

// Archiving is a registry-only operation: the repository's archive method is
// the one and only call, so linked transactions can never be cascaded.
func TestService_Archive_TouchesOnlyRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := property.NewMockRepository(ctrl)
	svc := property.NewService(repo)

	id := uuid.New()
	repo.EXPECT().ArchiveProperty(gomock.Any(), id).Return(nil)

	require.NoError(t, svc.Archive(context.Background(), id))
}

func TestService_Archive_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := property.NewMockRepository(ctrl)
	svc := property.NewService(repo)

	id := uuid.New()
	repo.EXPECT().ArchiveProperty(gomock.Any(), id).Return(property.ErrNotFound)

	assert.ErrorIs(t, svc.Archive(context.Background(), id), property.ErrNotFound)
}

func TestProperty_ManagementFee(t *testing.T) {
	p := &property.Property{FeeBps: 850} // 8.5%

	assert.Equal(t, int64(8500), p.ManagementFee(100000))
	assert.Equal(t, int64(0), p.ManagementFee(0))

	// Rounds half-up at the cent boundary.
	p = &property.Property{FeeBps: 700} // 7%
	assert.Equal(t, int64(7), p.ManagementFee(99))

	p = &property.Property{FeeBps: 0}
	assert.Equal(t, int64(0), p.ManagementFee(100000))
}
