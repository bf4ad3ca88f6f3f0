package validator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Seed    string `validate:"required,hexadecimal"`
	Network string `validate:"network"`
}

func newValidate(t *testing.T) *validator.Validate {
	v := validator.New()
	require.NoError(t, v.RegisterValidation("network", validateNetwork))
	return v
}

func TestNetworkRule(t *testing.T) {
	v := newValidate(t)

	assert.NoError(t, v.Struct(sample{Seed: "00ff", Network: "main"}))
	assert.NoError(t, v.Struct(sample{Seed: "00ff", Network: "test"}))
	assert.Error(t, v.Struct(sample{Seed: "00ff", Network: "regtest"}))
}

func TestGetErrorMsg(t *testing.T) {
	v := newValidate(t)

	err := v.Struct(sample{Network: "regtest"})
	require.Error(t, err)
	assert.Equal(t, "Seed 不能为空; Network 必须是 [main test] 之一", GetErrorMsg(err))

	err = v.Struct(sample{Seed: "zz", Network: "main"})
	assert.Equal(t, "Seed 必须是 Hex 字符串", GetErrorMsg(err))

	assert.Equal(t, "请求参数错误", GetErrorMsg(errors.New("EOF")))
}

func TestInit(t *testing.T) {
	assert.NoError(t, Init())
}
