package services

import (
	"testing"
	"time"

	"atendimento-http-service/internal/domain/models"
)

func TestCreateEntregaUmaPorMes(t *testing.T) {
	db := newTestDB(t)
	svc := NewEntregaService(db, newTestConfig(t))
	familia := criarFamilia(t, db, "Família Cesta")

	primeira := &models.EntregaCesta{FamiliaID: familia.ID, DataEntrega: dia(2025, time.March, 5)}
	if err := svc.CreateEntrega(primeira, nil); err != nil {
		t.Fatalf("primeira entrega do mês falhou: %v", err)
	}

	// segunda entrega no mesmo mês, ainda que em outro dia
	segunda := &models.EntregaCesta{FamiliaID: familia.ID, DataEntrega: dia(2025, time.March, 20)}
	if err := svc.CreateEntrega(segunda, nil); err == nil {
		t.Fatal("segunda entrega no mesmo mês deveria ser rejeitada")
	}

	// mês seguinte volta a ser permitido
	abril := &models.EntregaCesta{FamiliaID: familia.ID, DataEntrega: dia(2025, time.April, 2)}
	if err := svc.CreateEntrega(abril, nil); err != nil {
		t.Fatalf("entrega no mês seguinte falhou: %v", err)
	}

	// outra família no mesmo mês não é afetada
	outra := criarFamilia(t, db, "Família Vizinha")
	vizinha := &models.EntregaCesta{FamiliaID: outra.ID, DataEntrega: dia(2025, time.March, 5)}
	if err := svc.CreateEntrega(vizinha, nil); err != nil {
		t.Fatalf("entrega de outra família no mesmo mês falhou: %v", err)
	}
}

func TestCreateEntregaFamiliaInexistente(t *testing.T) {
	db := newTestDB(t)
	svc := NewEntregaService(db, newTestConfig(t))

	entrega := &models.EntregaCesta{FamiliaID: 999, DataEntrega: dia(2025, time.March, 5)}
	if err := svc.CreateEntrega(entrega, nil); err == nil {
		t.Fatal("entrega para família inexistente deveria ser rejeitada")
	}
}

func TestCreateEntregaRegistraUsuario(t *testing.T) {
	db := newTestDB(t)
	svc := NewEntregaService(db, newTestConfig(t))
	familia := criarFamilia(t, db, "Família Registro")

	usuario := models.Usuario{Email: "atendente@teste.org", Nome: "Atendente", Senha: "segredo1", Tipo: models.TipoAtendente, Ativo: true}
	if err := db.Create(&usuario).Error; err != nil {
		t.Fatalf("falha ao criar usuário: %v", err)
	}

	entrega := &models.EntregaCesta{FamiliaID: familia.ID, DataEntrega: dia(2025, time.May, 10)}
	if err := svc.CreateEntrega(entrega, &usuario.ID); err != nil {
		t.Fatalf("criação falhou: %v", err)
	}

	salva, err := svc.GetEntregaByID(entrega.ID)
	if err != nil {
		t.Fatalf("busca falhou: %v", err)
	}
	if salva.UsuarioRegistroID == nil || *salva.UsuarioRegistroID != usuario.ID {
		t.Fatal("usuário de registro não foi gravado na entrega")
	}
}

func TestUpdateEntregaRevalidaMes(t *testing.T) {
	db := newTestDB(t)
	svc := NewEntregaService(db, newTestConfig(t))
	familia := criarFamilia(t, db, "Família Atualiza")

	marco := &models.EntregaCesta{FamiliaID: familia.ID, DataEntrega: dia(2025, time.March, 5)}
	if err := svc.CreateEntrega(marco, nil); err != nil {
		t.Fatalf("criação falhou: %v", err)
	}
	abril := &models.EntregaCesta{FamiliaID: familia.ID, DataEntrega: dia(2025, time.April, 5)}
	if err := svc.CreateEntrega(abril, nil); err != nil {
		t.Fatalf("criação falhou: %v", err)
	}

	// mover a entrega de abril para março colide com a existente
	if _, err := svc.UpdateEntrega(abril.ID, map[string]interface{}{"data_entrega": dia(2025, time.March, 20)}); err == nil {
		t.Fatal("mover a entrega para um mês já atendido deveria ser rejeitado")
	}

	// alterar apenas as observações não dispara a regra
	if _, err := svc.UpdateEntrega(abril.ID, map[string]interface{}{"observacoes": "cesta completa"}); err != nil {
		t.Fatalf("atualização de observações falhou: %v", err)
	}
}

func TestResumoMensalOrdenacao(t *testing.T) {
	db := newTestDB(t)
	svc := NewEntregaService(db, newTestConfig(t))

	familias := []*models.Familia{
		criarFamilia(t, db, "Família 1"),
		criarFamilia(t, db, "Família 2"),
		criarFamilia(t, db, "Família 3"),
	}

	datas := []time.Time{
		dia(2024, time.December, 10),
		dia(2025, time.January, 8),
		dia(2025, time.January, 15),
		dia(2025, time.February, 3),
	}
	entregas := []models.EntregaCesta{
		{FamiliaID: familias[0].ID, DataEntrega: datas[0]},
		{FamiliaID: familias[0].ID, DataEntrega: datas[1]},
		{FamiliaID: familias[1].ID, DataEntrega: datas[2]},
		{FamiliaID: familias[2].ID, DataEntrega: datas[3]},
	}
	for i := range entregas {
		if err := db.Create(&entregas[i]).Error; err != nil {
			t.Fatalf("falha ao criar entrega: %v", err)
		}
	}

	resumo, err := svc.ResumoMensal()
	if err != nil {
		t.Fatalf("ResumoMensal falhou: %v", err)
	}

	esperado := []ResumoMensalItem{
		{MesAno: "02/2025", Mes: 2, Ano: 2025, Total: 1},
		{MesAno: "01/2025", Mes: 1, Ano: 2025, Total: 2},
		{MesAno: "12/2024", Mes: 12, Ano: 2024, Total: 1},
	}
	if len(resumo) != len(esperado) {
		t.Fatalf("esperados %d meses, obtidos %d", len(esperado), len(resumo))
	}
	for i, item := range esperado {
		if resumo[i] != item {
			t.Errorf("posição %d: esperado %+v, obtido %+v", i, item, resumo[i])
		}
	}
}
