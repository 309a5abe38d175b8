package services

import (
	"fmt"
	"testing"

	"atendimento-http-service/internal/domain/models"
)

func TestConfiguracaoChaveUnica(t *testing.T) {
	db := newTestDB(t)
	svc := NewConfiguracaoService(db, newTestConfig(t))

	if err := svc.CreateConfiguracao(&models.ConfiguracaoSistema{Chave: "dias_encontro", Valor: "sabado"}); err != nil {
		t.Fatalf("criação falhou: %v", err)
	}
	if err := svc.CreateConfiguracao(&models.ConfiguracaoSistema{Chave: "dias_encontro", Valor: "domingo"}); err == nil {
		t.Fatal("chave duplicada deveria ser rejeitada")
	}
}

func TestConfiguracaoBuscaPorIDOuChave(t *testing.T) {
	db := newTestDB(t)
	svc := NewConfiguracaoService(db, newTestConfig(t))

	configuracao := &models.ConfiguracaoSistema{Chave: "limite_entregas_mes", Valor: "1"}
	if err := svc.CreateConfiguracao(configuracao); err != nil {
		t.Fatalf("criação falhou: %v", err)
	}

	porChave, err := svc.GetConfiguracaoByIDOrChave("limite_entregas_mes")
	if err != nil {
		t.Fatalf("busca por chave falhou: %v", err)
	}
	if porChave.ID != configuracao.ID {
		t.Errorf("id esperado %d, obtido %d", configuracao.ID, porChave.ID)
	}

	porID, err := svc.GetConfiguracaoByIDOrChave(fmt.Sprintf("%d", configuracao.ID))
	if err != nil {
		t.Fatalf("busca por id falhou: %v", err)
	}
	if porID.Chave != "limite_entregas_mes" {
		t.Errorf("chave esperada %q, obtida %q", "limite_entregas_mes", porID.Chave)
	}

	if _, err := svc.GetConfiguracaoByIDOrChave("inexistente"); err == nil {
		t.Fatal("chave inexistente deveria falhar")
	}
}

func TestConfiguracaoGetValor(t *testing.T) {
	db := newTestDB(t)
	svc := NewConfiguracaoService(db, newTestConfig(t))

	if err := svc.CreateConfiguracao(&models.ConfiguracaoSistema{Chave: "dias_encontro", Valor: "sabado"}); err != nil {
		t.Fatalf("criação falhou: %v", err)
	}

	valor, err := svc.GetValor("dias_encontro")
	if err != nil {
		t.Fatalf("GetValor falhou: %v", err)
	}
	if valor != "sabado" {
		t.Errorf("valor esperado %q, obtido %q", "sabado", valor)
	}
}

func TestConfiguracaoUpdateEDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewConfiguracaoService(db, newTestConfig(t))

	primeira := &models.ConfiguracaoSistema{Chave: "dias_encontro", Valor: "sabado"}
	segunda := &models.ConfiguracaoSistema{Chave: "limite_entregas_mes", Valor: "1"}
	for _, c := range []*models.ConfiguracaoSistema{primeira, segunda} {
		if err := svc.CreateConfiguracao(c); err != nil {
			t.Fatalf("criação falhou: %v", err)
		}
	}

	// renomear para uma chave já existente é rejeitado
	if _, err := svc.UpdateConfiguracao("dias_encontro", map[string]interface{}{"chave": "limite_entregas_mes"}); err == nil {
		t.Fatal("renomear para chave em uso deveria ser rejeitado")
	}

	atualizada, err := svc.UpdateConfiguracao("dias_encontro", map[string]interface{}{"valor": "domingo"})
	if err != nil {
		t.Fatalf("atualização falhou: %v", err)
	}
	if atualizada.Valor != "domingo" {
		t.Errorf("valor esperado %q, obtido %q", "domingo", atualizada.Valor)
	}

	if err := svc.DeleteConfiguracao("dias_encontro"); err != nil {
		t.Fatalf("remoção falhou: %v", err)
	}
	if _, err := svc.GetConfiguracaoByIDOrChave("dias_encontro"); err == nil {
		t.Fatal("configuração removida ainda encontrada")
	}
}
