package services

import (
	"testing"
	"time"

	"atendimento-http-service/internal/domain/models"
)

func TestCreateEncontroDataUnica(t *testing.T) {
	db := newTestDB(t)
	svc := NewEncontroService(db, newTestConfig(t))

	data := dia(2025, time.June, 7)
	if err := svc.CreateEncontro(&models.Encontro{Data: data, Ativo: true}); err != nil {
		t.Fatalf("criação falhou: %v", err)
	}
	if err := svc.CreateEncontro(&models.Encontro{Data: data, Ativo: true}); err == nil {
		t.Fatal("segundo encontro na mesma data deveria ser rejeitado")
	}
	if err := svc.CreateEncontro(&models.Encontro{Data: dia(2025, time.June, 14), Ativo: true}); err != nil {
		t.Fatalf("encontro em outra data falhou: %v", err)
	}
}

func TestRegistrarPresencasLote(t *testing.T) {
	db := newTestDB(t)
	svc := NewEncontroService(db, newTestConfig(t))
	familia := criarFamilia(t, db, "Família Presença")

	ativa := criarMembro(t, db, familia.ID, "Ana", dia(2018, time.February, 1))
	inativa := criarMembro(t, db, familia.ID, "Bia", dia(2017, time.August, 20))
	if err := db.Model(inativa).Update("ativo", false).Error; err != nil {
		t.Fatalf("falha ao desativar membro: %v", err)
	}

	encontro := criarEncontro(t, db, dia(2025, time.June, 7))

	usuario := models.Usuario{Email: "registro@teste.org", Senha: "segredo1", Ativo: true}
	if err := db.Create(&usuario).Error; err != nil {
		t.Fatalf("falha ao criar usuário: %v", err)
	}

	entradas := []PresencaEntrada{
		{MembroID: ativa.ID, Presente: true},
		{MembroID: inativa.ID, Presente: true},
		{MembroID: 999, Presente: false},
	}
	resultado, err := svc.RegistrarPresencas(encontro.ID, entradas, &usuario.ID)
	if err != nil {
		t.Fatalf("RegistrarPresencas falhou: %v", err)
	}

	if resultado.EncontroID != encontro.ID {
		t.Fatalf("encontro esperado %d, obtido %d", encontro.ID, resultado.EncontroID)
	}
	if len(resultado.Resultados) != 3 {
		t.Fatalf("esperados 3 resultados, obtidos %d", len(resultado.Resultados))
	}
	if resultado.Resultados[0].Status != PresencaCriada {
		t.Errorf("membro ativo: esperado %q, obtido %q", PresencaCriada, resultado.Resultados[0].Status)
	}
	if resultado.Resultados[1].Status != PresencaErro {
		t.Errorf("membro inativo: esperado %q, obtido %q", PresencaErro, resultado.Resultados[1].Status)
	}
	if resultado.Resultados[2].Status != PresencaErro {
		t.Errorf("membro inexistente: esperado %q, obtido %q", PresencaErro, resultado.Resultados[2].Status)
	}

	// reenviar a mesma lista atualiza em vez de duplicar
	entradas[0].Presente = false
	entradas[0].Observacoes = "saiu mais cedo"
	resultado, err = svc.RegistrarPresencas(encontro.ID, entradas[:1], &usuario.ID)
	if err != nil {
		t.Fatalf("reenvio falhou: %v", err)
	}
	if resultado.Resultados[0].Status != PresencaAtualizada {
		t.Errorf("reenvio: esperado %q, obtido %q", PresencaAtualizada, resultado.Resultados[0].Status)
	}

	var total int64
	db.Model(&models.Presenca{}).Where("encontro_id = ?", encontro.ID).Count(&total)
	if total != 1 {
		t.Fatalf("esperada 1 presença gravada, obtidas %d", total)
	}

	var presenca models.Presenca
	if err := db.Where("membro_id = ? AND encontro_id = ?", ativa.ID, encontro.ID).First(&presenca).Error; err != nil {
		t.Fatalf("busca da presença falhou: %v", err)
	}
	if presenca.Presente {
		t.Error("presença deveria ter sido atualizada para falta")
	}
	if presenca.Observacoes != "saiu mais cedo" {
		t.Errorf("observações esperadas %q, obtidas %q", "saiu mais cedo", presenca.Observacoes)
	}
}

func TestRegistrarPresencasEncontroInexistente(t *testing.T) {
	db := newTestDB(t)
	svc := NewEncontroService(db, newTestConfig(t))

	if _, err := svc.RegistrarPresencas(999, nil, nil); err == nil {
		t.Fatal("registro em encontro inexistente deveria falhar")
	}
}

func TestDeleteEncontroRemovePresencas(t *testing.T) {
	db := newTestDB(t)
	svc := NewEncontroService(db, newTestConfig(t))
	familia := criarFamilia(t, db, "Família Limpeza")
	membro := criarMembro(t, db, familia.ID, "Ana", dia(2018, time.February, 1))
	encontro := criarEncontro(t, db, dia(2025, time.June, 7))

	if _, err := svc.RegistrarPresencas(encontro.ID, []PresencaEntrada{{MembroID: membro.ID, Presente: true}}, nil); err != nil {
		t.Fatalf("registro falhou: %v", err)
	}

	if err := svc.DeleteEncontro(encontro.ID); err != nil {
		t.Fatalf("remoção falhou: %v", err)
	}

	var total int64
	db.Model(&models.Presenca{}).Where("encontro_id = ?", encontro.ID).Count(&total)
	if total != 0 {
		t.Fatalf("presenças do encontro removido deveriam ser apagadas, restam %d", total)
	}
}
