package services

import (
	"testing"

	"atendimento-http-service/internal/domain/models"
)

func TestJWTGenerateAndExtract(t *testing.T) {
	db := newTestDB(t)
	svc := NewJWTService(newTestConfig(t), db)

	usuario := models.Usuario{Email: "ana@teste.org", Nome: "Ana", Sobrenome: "Lima", Tipo: models.TipoAtendente, Senha: "segredo1", Ativo: true}
	if err := db.Create(&usuario).Error; err != nil {
		t.Fatalf("falha ao criar usuário: %v", err)
	}

	token, err := svc.GenerateToken(&usuario)
	if err != nil {
		t.Fatalf("GenerateToken falhou: %v", err)
	}

	claims, err := svc.ExtractClaims(token)
	if err != nil {
		t.Fatalf("ExtractClaims falhou: %v", err)
	}
	if claims.UserID != usuario.ID {
		t.Errorf("user_id esperado %d, obtido %d", usuario.ID, claims.UserID)
	}
	if claims.Email != usuario.Email {
		t.Errorf("email esperado %q, obtido %q", usuario.Email, claims.Email)
	}
	if claims.Tipo != models.TipoAtendente {
		t.Errorf("tipo esperado %q, obtido %q", models.TipoAtendente, claims.Tipo)
	}
	if claims.Nome != "Ana Lima" {
		t.Errorf("nome esperado %q, obtido %q", "Ana Lima", claims.Nome)
	}
}

func TestJWTValidateTokenInvalido(t *testing.T) {
	svc := NewJWTService(newTestConfig(t), newTestDB(t))

	if _, err := svc.ValidateToken("nao-e-um-token"); err == nil {
		t.Fatal("token malformado deveria ser rejeitado")
	}
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewJWTService(newTestConfig(t), db)

	// o hook BeforeCreate grava o hash da senha
	usuario := models.Usuario{Email: "ana@teste.org", Nome: "Ana", Senha: "senha-forte", Tipo: models.TipoAdmin, Ativo: true}
	if err := db.Create(&usuario).Error; err != nil {
		t.Fatalf("falha ao criar usuário: %v", err)
	}

	resultado, err := svc.Login("ana@teste.org", "senha-forte")
	if err != nil {
		t.Fatalf("login válido falhou: %v", err)
	}
	if resultado.Token == "" {
		t.Error("login deveria devolver um token")
	}
	if resultado.Usuario.Email != usuario.Email || resultado.Usuario.Tipo != models.TipoAdmin {
		t.Errorf("bloco de usuário inesperado: %+v", resultado.Usuario)
	}

	if _, err := svc.Login("ana@teste.org", "senha-errada"); err == nil {
		t.Fatal("senha incorreta deveria ser rejeitada")
	}
	if _, err := svc.Login("ninguem@teste.org", "senha-forte"); err == nil {
		t.Fatal("e-mail desconhecido deveria ser rejeitado")
	}
}

func TestLoginUsuarioInativo(t *testing.T) {
	db := newTestDB(t)
	svc := NewJWTService(newTestConfig(t), db)

	usuario := models.Usuario{Email: "inativa@teste.org", Senha: "senha-forte", Ativo: true}
	if err := db.Create(&usuario).Error; err != nil {
		t.Fatalf("falha ao criar usuário: %v", err)
	}
	if err := db.Model(&usuario).Update("ativo", false).Error; err != nil {
		t.Fatalf("falha ao desativar usuário: %v", err)
	}

	if _, err := svc.Login("inativa@teste.org", "senha-forte"); err == nil {
		t.Fatal("usuário inativo não deveria autenticar")
	}
}
