package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvProvider(t *testing.T) {
	t.Setenv("DASHBOARD_TEST_SECRET", "s3cret")

	p := NewEnvProvider()
	v, err := p.GetCredential("DASHBOARD_TEST_SECRET")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", v)

	_, err = p.GetCredential("DASHBOARD_TEST_MISSING")
	require.Error(t, err)
}

func TestOptional(t *testing.T) {
	p := NewStaticProvider(map[string]string{"REDIS_PASSWORD": "pw"})

	assert.Equal(t, "pw", Optional(p, "REDIS_PASSWORD"))
	assert.Equal(t, "", Optional(p, "OTHER"))
	assert.Equal(t, "", Optional(nil, "REDIS_PASSWORD"))
}
