package services

import (
	"testing"
	"time"

	"atendimento-http-service/internal/domain/models"
)

func TestFrequenciaMembros(t *testing.T) {
	db := newTestDB(t)
	svc := NewRelatorioService(db, newTestConfig(t))
	familia := criarFamilia(t, db, "Família Frequência")
	membro := criarMembro(t, db, familia.ID, "Ana", dia(2018, time.February, 1))

	encontros := []*models.Encontro{
		criarEncontro(t, db, dia(2025, time.June, 7)),
		criarEncontro(t, db, dia(2025, time.June, 14)),
		criarEncontro(t, db, dia(2025, time.June, 21)),
		criarEncontro(t, db, dia(2025, time.June, 28)),
	}

	// presente nos dois primeiros, falta registrada no terceiro e nenhum
	// registro no quarto
	presencas := []models.Presenca{
		{MembroID: membro.ID, EncontroID: encontros[0].ID, Presente: true},
		{MembroID: membro.ID, EncontroID: encontros[1].ID, Presente: true},
		{MembroID: membro.ID, EncontroID: encontros[2].ID, Presente: true, Observacoes: "doente"},
	}
	for i := range presencas {
		if err := db.Create(&presencas[i]).Error; err != nil {
			t.Fatalf("falha ao criar presença: %v", err)
		}
	}
	if err := db.Model(&presencas[2]).Update("presente", false).Error; err != nil {
		t.Fatalf("falha ao marcar falta: %v", err)
	}

	relatorio, err := svc.FrequenciaMembros(dia(2025, time.June, 1), dia(2025, time.June, 30), 0, 0)
	if err != nil {
		t.Fatalf("FrequenciaMembros falhou: %v", err)
	}
	if len(relatorio) != 1 {
		t.Fatalf("esperado 1 membro, obtidos %d", len(relatorio))
	}

	linha := relatorio[0]
	if linha.TotalEncontros != 4 {
		t.Errorf("total de encontros esperado 4, obtido %d", linha.TotalEncontros)
	}
	if linha.TotalPresente != 2 {
		t.Errorf("total presente esperado 2, obtido %d", linha.TotalPresente)
	}
	if linha.FrequenciaPercentual != 50.00 {
		t.Errorf("frequência esperada 50.00, obtida %.2f", linha.FrequenciaPercentual)
	}
	if linha.FamiliaNome != "Família Frequência" {
		t.Errorf("nome da família esperado %q, obtido %q", "Família Frequência", linha.FamiliaNome)
	}
	if len(linha.Detalhes) != 4 {
		t.Fatalf("esperados 4 detalhes, obtidos %d", len(linha.Detalhes))
	}
	// encontro sem registro conta como falta
	if linha.Detalhes[3].Presente {
		t.Error("encontro sem registro deveria aparecer como ausência")
	}
	if linha.Detalhes[2].Observacoes != "doente" {
		t.Errorf("observações esperadas %q, obtidas %q", "doente", linha.Detalhes[2].Observacoes)
	}
}

func TestFrequenciaMembrosFiltroFamilia(t *testing.T) {
	db := newTestDB(t)
	svc := NewRelatorioService(db, newTestConfig(t))
	familiaA := criarFamilia(t, db, "Família A")
	familiaB := criarFamilia(t, db, "Família B")
	criarMembro(t, db, familiaA.ID, "Ana", dia(2018, time.February, 1))
	criarMembro(t, db, familiaB.ID, "Bruno", dia(2017, time.March, 2))
	criarEncontro(t, db, dia(2025, time.June, 7))

	relatorio, err := svc.FrequenciaMembros(dia(2025, time.June, 1), dia(2025, time.June, 30), 0, familiaA.ID)
	if err != nil {
		t.Fatalf("FrequenciaMembros falhou: %v", err)
	}
	if len(relatorio) != 1 {
		t.Fatalf("esperado 1 membro da família A, obtidos %d", len(relatorio))
	}
	if relatorio[0].FamiliaID != familiaA.ID {
		t.Errorf("família esperada %d, obtida %d", familiaA.ID, relatorio[0].FamiliaID)
	}
}

func TestEntregasCestasAgrupamento(t *testing.T) {
	db := newTestDB(t)
	svc := NewRelatorioService(db, newTestConfig(t))

	semNome := criarFamilia(t, db, "")
	comNome := criarFamilia(t, db, "Família Oliveira")

	usuario := models.Usuario{Email: "reg@teste.org", Nome: "Carla", Sobrenome: "Reis", Senha: "segredo1", Ativo: true}
	if err := db.Create(&usuario).Error; err != nil {
		t.Fatalf("falha ao criar usuário: %v", err)
	}

	entregas := []models.EntregaCesta{
		{FamiliaID: semNome.ID, DataEntrega: dia(2025, time.January, 10)},
		{FamiliaID: comNome.ID, DataEntrega: dia(2025, time.February, 5), UsuarioRegistroID: &usuario.ID},
		{FamiliaID: semNome.ID, DataEntrega: dia(2025, time.February, 12)},
	}
	for i := range entregas {
		if err := db.Create(&entregas[i]).Error; err != nil {
			t.Fatalf("falha ao criar entrega: %v", err)
		}
	}

	relatorio, err := svc.EntregasCestas(dia(2025, time.January, 1), dia(2025, time.December, 31))
	if err != nil {
		t.Fatalf("EntregasCestas falhou: %v", err)
	}
	if len(relatorio) != 2 {
		t.Fatalf("esperados 2 meses, obtidos %d", len(relatorio))
	}

	// mês mais recente primeiro
	if relatorio[0].MesAno != "02/2025" || relatorio[1].MesAno != "01/2025" {
		t.Fatalf("ordem de meses inesperada: %s, %s", relatorio[0].MesAno, relatorio[1].MesAno)
	}
	if relatorio[0].TotalEntregas != 2 {
		t.Errorf("total de fevereiro esperado 2, obtido %d", relatorio[0].TotalEntregas)
	}

	fevereiro := relatorio[0].Familias
	if fevereiro[0].UsuarioRegistro != "Carla Reis" {
		t.Errorf("usuário de registro esperado %q, obtido %q", "Carla Reis", fevereiro[0].UsuarioRegistro)
	}
	// entrega sem usuário registrador cai no rótulo padrão
	if fevereiro[1].UsuarioRegistro != "Sistema" {
		t.Errorf("usuário de registro esperado %q, obtido %q", "Sistema", fevereiro[1].UsuarioRegistro)
	}
	// família sem nome recebe o rótulo posicional
	if fevereiro[1].FamiliaNome == "" {
		t.Error("família sem nome deveria receber um rótulo")
	}
}

func TestGradeRoupas(t *testing.T) {
	db := newTestDB(t)
	svc := NewRelatorioService(db, newTestConfig(t))
	familia := criarFamilia(t, db, "Família Grade")

	calcado34 := 34
	calcado28 := 28
	membros := []models.MembroFamilia{
		{NomeCompleto: "Ana", DataNascimento: dia(2018, time.February, 1), Sexo: "F", FamiliaID: familia.ID, Ativo: true,
			TamanhoCamiseta: "G", TamanhoCalca: "40", NumeroCalcado: &calcado34},
		{NomeCompleto: "Bruno", DataNascimento: dia(2017, time.March, 2), Sexo: "M", FamiliaID: familia.ID, Ativo: true,
			TamanhoCamiseta: "PP", TamanhoCalca: "38", NumeroCalcado: &calcado28},
		{NomeCompleto: "Carla", DataNascimento: dia(2016, time.April, 3), Sexo: "F", FamiliaID: familia.ID, Ativo: true,
			TamanhoCamiseta: "G"},
	}
	for i := range membros {
		if err := db.Create(&membros[i]).Error; err != nil {
			t.Fatalf("falha ao criar membro: %v", err)
		}
	}

	// inativo fica de fora da grade
	inativo := criarMembro(t, db, familia.ID, "Davi", dia(2015, time.May, 4))
	if err := db.Model(inativo).Updates(map[string]interface{}{"ativo": false, "tamanho_camiseta": "XXG"}).Error; err != nil {
		t.Fatalf("falha ao desativar membro: %v", err)
	}

	grade, err := svc.GradeRoupas()
	if err != nil {
		t.Fatalf("GradeRoupas falhou: %v", err)
	}

	// camisetas na ordem natural dos tamanhos
	if len(grade.Camisetas) != 2 {
		t.Fatalf("esperados 2 tamanhos de camiseta, obtidos %d", len(grade.Camisetas))
	}
	if grade.Camisetas[0].Tamanho != "PP" || grade.Camisetas[0].Total != 1 {
		t.Errorf("primeira camiseta esperada PP/1, obtida %s/%d", grade.Camisetas[0].Tamanho, grade.Camisetas[0].Total)
	}
	if grade.Camisetas[1].Tamanho != "G" || grade.Camisetas[1].Total != 2 {
		t.Errorf("segunda camiseta esperada G/2, obtida %s/%d", grade.Camisetas[1].Tamanho, grade.Camisetas[1].Total)
	}

	if len(grade.Calcas) != 2 || grade.Calcas[0].Tamanho != "38" {
		t.Errorf("calças fora da ordem esperada: %+v", grade.Calcas)
	}

	if len(grade.Calcados) != 2 {
		t.Fatalf("esperados 2 números de calçado, obtidos %d", len(grade.Calcados))
	}
	if *grade.Calcados[0].Numero != 28 || *grade.Calcados[1].Numero != 34 {
		t.Errorf("calçados fora da ordem numérica: %+v", grade.Calcados)
	}
}

func TestProgramasSociais(t *testing.T) {
	db := newTestDB(t)
	svc := NewRelatorioService(db, newTestConfig(t))

	familias := []*models.Familia{
		criarFamilia(t, db, "Família 1"),
		criarFamilia(t, db, "Família 2"),
		criarFamilia(t, db, "Família 3"),
		criarFamilia(t, db, "Família 4"),
	}

	atualizacoes := []map[string]interface{}{
		{"recebe_programas_sociais": true, "programas_sociais": "Bolsa Família, BPC"},
		{"recebe_programas_sociais": true, "programas_sociais": "Bolsa Família; Auxílio Gás"},
		{"recebe_programas_sociais": true, "programas_sociais": "Bolsa Família"},
		// não marcada como beneficiária, os programas listados não contam
		{"recebe_programas_sociais": false, "programas_sociais": "Bolsa Família"},
	}
	for i, campos := range atualizacoes {
		if err := db.Model(familias[i]).Updates(campos).Error; err != nil {
			t.Fatalf("falha ao atualizar família: %v", err)
		}
	}

	relatorio, err := svc.ProgramasSociais()
	if err != nil {
		t.Fatalf("ProgramasSociais falhou: %v", err)
	}

	if relatorio.TotalFamilias != 3 {
		t.Errorf("total de famílias esperado 3, obtido %d", relatorio.TotalFamilias)
	}
	if relatorio.TotalProgramas != 3 {
		t.Errorf("total de programas esperado 3, obtido %d", relatorio.TotalProgramas)
	}
	if len(relatorio.Programas) == 0 || relatorio.Programas[0].Programa != "Bolsa Família" {
		t.Fatalf("programa mais frequente esperado Bolsa Família, obtido %+v", relatorio.Programas)
	}
	if relatorio.Programas[0].TotalFamilias != 3 {
		t.Errorf("contagem do Bolsa Família esperada 3, obtida %d", relatorio.Programas[0].TotalFamilias)
	}
	// empate resolvido em ordem alfabética
	if relatorio.Programas[1].Programa != "Auxílio Gás" || relatorio.Programas[2].Programa != "BPC" {
		t.Errorf("desempate alfabético inesperado: %+v", relatorio.Programas[1:])
	}
}

func TestListRelatorios(t *testing.T) {
	svc := NewRelatorioService(newTestDB(t), newTestConfig(t))

	catalogo := svc.ListRelatorios()
	if len(catalogo) != 4 {
		t.Fatalf("esperados 4 relatórios, obtidos %d", len(catalogo))
	}
	nomes := map[string]bool{}
	for _, r := range catalogo {
		nomes[r.Nome] = true
	}
	for _, nome := range []string{"frequencia_membros", "entregas_cestas", "grade_roupas", "programas_sociais"} {
		if !nomes[nome] {
			t.Errorf("relatório %q ausente do catálogo", nome)
		}
	}
}
