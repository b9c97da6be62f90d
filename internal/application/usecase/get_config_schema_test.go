package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/application/port/mocks"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
)

func TestGetConfigSchemaUseCase_Execute(t *testing.T) {
	keys := []entity.ConfigKeyInfo{
		{
			Key:         "layout.edge_threshold",
			Type:        "float64",
			Default:     "0.2",
			Description: "Share of a stack's width or height that counts as an edge drop zone",
			Range:       "0-0.5",
			Section:     "Layout",
		},
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     "info",
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error"},
			Section:     "Logging",
		},
	}

	t.Run("returns schema keys from provider", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return(keys)

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		// Act
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{})

		// Assert
		require.NoError(t, err)
		assert.Len(t, result.Keys, 2)
		assert.Equal(t, "layout.edge_threshold", result.Keys[0].Key)
		assert.Equal(t, "0-0.5", result.Keys[0].Range)
		mock.AssertExpectationsForObjects(t, mockProvider)
	})

	t.Run("filters by section", func(t *testing.T) {
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return(keys)

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{Section: "logging"})

		require.NoError(t, err)
		require.Len(t, result.Keys, 1)
		assert.Equal(t, "logging.level", result.Keys[0].Key)
	})

	t.Run("returns empty slice when no keys", func(t *testing.T) {
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return([]entity.ConfigKeyInfo{})

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{})

		require.NoError(t, err)
		assert.Empty(t, result.Keys)
	})
}
