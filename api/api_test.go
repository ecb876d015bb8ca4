package api_test

import (
	"context"
	"testing"

	"fnbpos/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestGetSwagger_DocumentIsValid(t *testing.T) {
	doc, err := api.GetSwagger()

	require.NoError(t, err)
	require.NoError(t, doc.Validate(context.Background()))
	assert.NotNil(t, doc.Paths.Find("/api/v1/orders/{orderId}/actions/{action}"))
}

func TestRegisterSwagger(t *testing.T) {
	api.RegisterSwagger()
	api.RegisterSwagger()

	doc, err := swag.ReadDoc()

	require.NoError(t, err)
	assert.JSONEq(t, string(api.Spec()), doc)
}
