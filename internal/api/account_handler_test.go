package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brayannhc07/webapiautores/internal/api/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountHandler_RegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, request{method: http.MethodPost, target: "/api/cuentas/registrar", body: `{"email":"Lector@Example.com","password":"secreto123"}`})
	require.Equal(t, http.StatusCreated, rr.Code)
	issued := decode[dto.RespuestaAutenticacion](t, rr)
	assert.Equal(t, "issued-token", issued.Token)
	assert.True(t, issued.Expiracion.Equal(issuedExpiry))

	stored, ok := env.users.Users["lector@example.com"]
	require.True(t, ok, "email is normalized before storing")
	assert.Equal(t, "hash:secreto123", stored.HashedPassword)
	assert.NotContains(t, env.logs.String(), "secreto123")

	rr = env.do(t, request{method: http.MethodPost, target: "/api/cuentas/login", body: `{"email":"lector@example.com","password":"secreto123"}`})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "issued-token", decode[dto.RespuestaAutenticacion](t, rr).Token)
}

func TestAccountHandler_RegisterRejected(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"taken email", `{"email":"user@example.com","password":"secreto123"}`, "Ya existe una cuenta con ese email"},
		{"invalid email", `{"email":"no-es-email","password":"secreto123"}`, "errores"},
		{"missing password", `{"email":"nuevo@example.com"}`, "errores"},
		{"short password", `{"email":"nuevo@example.com","password":"corta"}`, "error"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			rr := env.do(t, request{method: http.MethodPost, target: "/api/cuentas/registrar", body: tc.body})
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.want)
		})
	}
}

func TestAccountHandler_LoginFailureIsUniform(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, request{method: http.MethodPost, target: "/api/cuentas/registrar", body: `{"email":"lector@example.com","password":"secreto123"}`})

	wrongPassword := env.do(t, request{method: http.MethodPost, target: "/api/cuentas/login", body: `{"email":"lector@example.com","password":"otra-clave"}`})
	unknownEmail := env.do(t, request{method: http.MethodPost, target: "/api/cuentas/login", body: `{"email":"nadie@example.com","password":"otra-clave"}`})

	for _, rr := range []*httptest.ResponseRecorder{wrongPassword, unknownEmail} {
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "Login incorrecto")
	}
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestAccountHandler_RenewToken(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, request{method: http.MethodGet, target: "/api/cuentas/renovarToken", token: userToken})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "issued-token", decode[dto.RespuestaAutenticacion](t, rr).Token)

	rr = env.do(t, request{method: http.MethodGet, target: "/api/cuentas/renovarToken"})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAccountHandler_AdminRole(t *testing.T) {
	env := newTestEnv(t)
	body := `{"email":"user@example.com"}`

	rr := env.do(t, request{method: http.MethodPost, target: "/api/cuentas/hacerAdmin", token: userToken, body: body})
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.False(t, env.users.Users["user@example.com"].IsAdmin)

	rr = env.do(t, request{method: http.MethodPost, target: "/api/cuentas/hacerAdmin", token: adminToken, body: body})
	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.True(t, env.users.Users["user@example.com"].IsAdmin)

	rr = env.do(t, request{method: http.MethodPost, target: "/api/cuentas/removerAdmin", token: adminToken, body: body})
	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.False(t, env.users.Users["user@example.com"].IsAdmin)

	rr = env.do(t, request{method: http.MethodPost, target: "/api/cuentas/hacerAdmin", token: adminToken, body: `{"email":"nadie@example.com"}`})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
