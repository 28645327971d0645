package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_FullDocument(t *testing.T) {
	t.Parallel()

	data := []byte(`
id: prod-cb
enableWaf: true
logRetentionDays: 90
vpc:
  s3EndpointId: vpce-0123456789abcdef0
  s3EndpointIps:
    - 10.0.1.5
guardrails:
  enabled: true
  identifier: A1B2C3D4E5F6
  version: DRAFT
models:
  - name: default
    modelId: anthropic.claude-sonnet:1
  - name: fallback
    modelId: amazon.titan-text:2
    enabled: false
`)

	doc, err := Parse(data)

	require.NoError(t, err)
	require.NotNil(t, doc.ID)
	assert.Equal(t, "prod-cb", *doc.ID)
	require.NotNil(t, doc.EnableWaf)
	assert.True(t, *doc.EnableWaf)
	require.NotNil(t, doc.LogRetentionDays)
	assert.Equal(t, 90, *doc.LogRetentionDays)

	require.NotNil(t, doc.Vpc)
	assert.Nil(t, doc.Vpc.VpcID)
	require.NotNil(t, doc.Vpc.S3EndpointID)
	assert.Equal(t, "vpce-0123456789abcdef0", *doc.Vpc.S3EndpointID)
	assert.Equal(t, []string{"10.0.1.5"}, doc.Vpc.S3EndpointIps)

	require.NotNil(t, doc.Guardrails)
	require.NotNil(t, doc.Guardrails.Enabled)
	assert.True(t, *doc.Guardrails.Enabled)

	require.Len(t, doc.Models, 2)
	assert.Nil(t, doc.Models[0].Enabled)
	require.NotNil(t, doc.Models[1].Enabled)
	assert.False(t, *doc.Models[1].Enabled)
}

func TestParse_OmittedVersusExplicitFalse(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte("id: dev\nenableWaf: false\n"))

	require.NoError(t, err)
	require.NotNil(t, doc.EnableWaf)
	assert.False(t, *doc.EnableWaf)
	assert.Nil(t, doc.LogRetentionDays)
	assert.Nil(t, doc.Vpc)
	assert.Nil(t, doc.Models)
}

func TestParse_ExplicitEmptyList(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte("id: dev\nmodels: []\n"))

	require.NoError(t, err)
	require.NotNil(t, doc.Models)
	assert.Empty(t, doc.Models)
}

func TestParse_EmptyData(t *testing.T) {
	t.Parallel()

	doc, err := Parse(nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyData)
	assert.Nil(t, doc)
}

func TestParse_MalformedYAML(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte("id: [unclosed\n"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
	assert.Nil(t, doc)
}

func TestParse_UnknownFieldRejected(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte("id: dev\nenableWfa: true\n"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
	assert.Nil(t, doc)
}

func TestParse_DuplicateKeyRejected(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte("id: dev\nid: prod\n"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
	assert.Nil(t, doc)
}
