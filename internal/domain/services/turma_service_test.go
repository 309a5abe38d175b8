package services

import (
	"testing"
	"time"

	"atendimento-http-service/internal/domain/models"
)

func TestCreateTurmaFaixaEtariaInvalida(t *testing.T) {
	db := newTestDB(t)
	svc := NewTurmaService(db, newTestConfig(t))

	casos := []struct {
		nome   string
		minima int
		maxima int
	}{
		{"invertida", 8, 5},
		{"degenerada", 6, 6},
	}
	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			err := svc.CreateTurma(&models.Turma{
				Nome:        "Turma teste",
				IdadeMinima: caso.minima,
				IdadeMaxima: caso.maxima,
				Ativo:       true,
			})
			if err == nil {
				t.Fatalf("faixa etária %d-%d deveria ser rejeitada", caso.minima, caso.maxima)
			}
		})
	}

	if err := svc.CreateTurma(&models.Turma{Nome: "3 a 5 anos", IdadeMinima: 3, IdadeMaxima: 5, Ativo: true}); err != nil {
		t.Fatalf("faixa etária válida foi rejeitada: %v", err)
	}
}

func TestUpdateTurmaFaixaEtaria(t *testing.T) {
	db := newTestDB(t)
	svc := NewTurmaService(db, newTestConfig(t))

	turma := &models.Turma{Nome: "6 a 8 anos", IdadeMinima: 6, IdadeMaxima: 8, Ativo: true}
	if err := svc.CreateTurma(turma); err != nil {
		t.Fatalf("criação falhou: %v", err)
	}

	if _, err := svc.UpdateTurma(turma.ID, map[string]interface{}{"idade_maxima": 5}); err == nil {
		t.Fatal("atualização que inverte a faixa etária deveria ser rejeitada")
	}

	atualizada, err := svc.UpdateTurma(turma.ID, map[string]interface{}{"idade_maxima": 9})
	if err != nil {
		t.Fatalf("atualização válida falhou: %v", err)
	}
	if atualizada.IdadeMaxima != 9 {
		t.Fatalf("idade máxima esperada 9, obtida %d", atualizada.IdadeMaxima)
	}
}

func TestTurmaGetMembrosPorIdade(t *testing.T) {
	db := newTestDB(t)
	svc := NewTurmaService(db, newTestConfig(t))
	familia := criarFamilia(t, db, "Família Idades")

	hoje := time.Now()
	// dentro da faixa 3-5: 4 anos completos
	dentro := criarMembro(t, db, familia.ID, "Ana", hoje.AddDate(-4, 0, 0))
	// fora da faixa: 8 anos
	criarMembro(t, db, familia.ID, "Bruno", hoje.AddDate(-8, 0, 0))
	// inativo não aparece mesmo com idade compatível
	inativo := criarMembro(t, db, familia.ID, "Carla", hoje.AddDate(-4, 0, 0))
	if err := db.Model(inativo).Update("ativo", false).Error; err != nil {
		t.Fatalf("falha ao desativar membro: %v", err)
	}

	turma := &models.Turma{Nome: "3 a 5 anos", IdadeMinima: 3, IdadeMaxima: 5, Ativo: true}
	if err := svc.CreateTurma(turma); err != nil {
		t.Fatalf("criação da turma falhou: %v", err)
	}

	membros, err := svc.GetMembros(turma.ID)
	if err != nil {
		t.Fatalf("GetMembros falhou: %v", err)
	}
	if len(membros) != 1 {
		t.Fatalf("esperado 1 membro na faixa, obtidos %d", len(membros))
	}
	if membros[0].ID != dentro.ID {
		t.Fatalf("membro esperado %d, obtido %d", dentro.ID, membros[0].ID)
	}
	if membros[0].Idade != 4 {
		t.Fatalf("idade calculada esperada 4, obtida %d", membros[0].Idade)
	}
}
