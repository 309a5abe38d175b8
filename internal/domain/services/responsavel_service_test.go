package services

import (
	"testing"
	"time"

	"atendimento-http-service/internal/domain/models"
)

func novoResponsavel(familiaID uint, nome string, principal bool) *models.Responsavel {
	return &models.Responsavel{
		NomeCompleto:   nome,
		Telefone:       "(19) 99999-0000",
		DataNascimento: time.Date(1985, 3, 10, 0, 0, 0, 0, time.UTC),
		Sexo:           models.SexoFeminino,
		FamiliaID:      familiaID,
		Principal:      principal,
	}
}

func TestCreateResponsavelPrincipalUnico(t *testing.T) {
	db := newTestDB(t)
	svc := NewResponsavelService(db, newTestConfig(t))
	familia := criarFamilia(t, db, "Família Silva")

	if err := svc.CreateResponsavel(novoResponsavel(familia.ID, "Maria Silva", true)); err != nil {
		t.Fatalf("criação do primeiro responsável principal falhou: %v", err)
	}

	err := svc.CreateResponsavel(novoResponsavel(familia.ID, "João Silva", true))
	if err == nil {
		t.Fatal("segundo responsável principal da mesma família deveria ser rejeitado")
	}

	// um responsável não principal continua permitido
	if err := svc.CreateResponsavel(novoResponsavel(familia.ID, "João Silva", false)); err != nil {
		t.Fatalf("responsável não principal deveria ser aceito: %v", err)
	}
}

func TestCreateResponsavelPrincipalOutraFamilia(t *testing.T) {
	db := newTestDB(t)
	svc := NewResponsavelService(db, newTestConfig(t))
	familiaA := criarFamilia(t, db, "Família A")
	familiaB := criarFamilia(t, db, "Família B")

	if err := svc.CreateResponsavel(novoResponsavel(familiaA.ID, "Maria", true)); err != nil {
		t.Fatalf("criação do responsável da família A falhou: %v", err)
	}
	if err := svc.CreateResponsavel(novoResponsavel(familiaB.ID, "Ana", true)); err != nil {
		t.Fatalf("a regra do principal não deve atravessar famílias: %v", err)
	}
}

func TestCreateResponsavelFamiliaInexistente(t *testing.T) {
	db := newTestDB(t)
	svc := NewResponsavelService(db, newTestConfig(t))

	if err := svc.CreateResponsavel(novoResponsavel(999, "Maria", false)); err == nil {
		t.Fatal("responsável de família inexistente deveria ser rejeitado")
	}
}

func TestUpdateResponsavelPromoverPrincipal(t *testing.T) {
	db := newTestDB(t)
	svc := NewResponsavelService(db, newTestConfig(t))
	familia := criarFamilia(t, db, "Família Souza")

	principal := novoResponsavel(familia.ID, "Maria Souza", true)
	if err := svc.CreateResponsavel(principal); err != nil {
		t.Fatalf("criação falhou: %v", err)
	}
	secundario := novoResponsavel(familia.ID, "Pedro Souza", false)
	if err := svc.CreateResponsavel(secundario); err != nil {
		t.Fatalf("criação falhou: %v", err)
	}

	if _, err := svc.UpdateResponsavel(secundario.ID, map[string]interface{}{"principal": true}); err == nil {
		t.Fatal("promover um segundo principal deveria ser rejeitado")
	}

	// o próprio principal pode ser atualizado sem disparar a regra
	if _, err := svc.UpdateResponsavel(principal.ID, map[string]interface{}{"telefone": "(19) 98888-0000"}); err != nil {
		t.Fatalf("atualização do principal falhou: %v", err)
	}
}
