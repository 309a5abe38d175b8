package models

import (
	"reflect"
	"testing"
	"time"
)

func TestCalcularIdade(t *testing.T) {
	hoje := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	casos := []struct {
		nome       string
		nascimento time.Time
		esperado   int
	}{
		{"aniversário já passou", time.Date(2018, time.March, 10, 0, 0, 0, 0, time.UTC), 7},
		{"aniversário hoje", time.Date(2018, time.June, 15, 0, 0, 0, 0, time.UTC), 7},
		{"aniversário ainda não chegou", time.Date(2018, time.June, 16, 0, 0, 0, 0, time.UTC), 6},
		{"mês seguinte", time.Date(2018, time.July, 1, 0, 0, 0, 0, time.UTC), 6},
		{"recém-nascido", time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC), 0},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			membro := MembroFamilia{DataNascimento: caso.nascimento}
			if idade := membro.CalcularIdade(hoje); idade != caso.esperado {
				t.Errorf("idade esperada %d, obtida %d", caso.esperado, idade)
			}
		})
	}
}

func TestSplitProgramasSociais(t *testing.T) {
	casos := []struct {
		nome     string
		texto    string
		esperado []string
	}{
		{"vírgulas", "Bolsa Família, BPC", []string{"Bolsa Família", "BPC"}},
		{"ponto e vírgula", "Bolsa Família; Auxílio Gás", []string{"Bolsa Família", "Auxílio Gás"}},
		{"quebras de linha", "Bolsa Família\nBPC", []string{"Bolsa Família", "BPC"}},
		{"espaços e vazios", " Bolsa Família ,, BPC , ", []string{"Bolsa Família", "BPC"}},
		{"vazio", "", nil},
		{"só separadores", " ,;\n ", nil},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			if got := SplitProgramasSociais(caso.texto); !reflect.DeepEqual(got, caso.esperado) {
				t.Errorf("esperado %v, obtido %v", caso.esperado, got)
			}
		})
	}
}

func TestFamiliaDisplayName(t *testing.T) {
	nomeada := Familia{Nome: "Família Silva"}
	if nomeada.DisplayName() != "Família Silva" {
		t.Errorf("nome esperado %q, obtido %q", "Família Silva", nomeada.DisplayName())
	}

	anonima := Familia{BaseModel: BaseModel{ID: 12}}
	if anonima.DisplayName() != "Família #12" {
		t.Errorf("rótulo esperado %q, obtido %q", "Família #12", anonima.DisplayName())
	}
}

func TestUsuarioNomeCompleto(t *testing.T) {
	completo := Usuario{Nome: "Ana", Sobrenome: "Lima", Email: "ana@teste.org"}
	if completo.NomeCompleto() != "Ana Lima" {
		t.Errorf("esperado %q, obtido %q", "Ana Lima", completo.NomeCompleto())
	}

	soNome := Usuario{Nome: "Ana", Email: "ana@teste.org"}
	if soNome.NomeCompleto() != "Ana" {
		t.Errorf("esperado %q, obtido %q", "Ana", soNome.NomeCompleto())
	}

	semNome := Usuario{Email: "ana@teste.org"}
	if semNome.NomeCompleto() != "ana@teste.org" {
		t.Errorf("esperado o e-mail como fallback, obtido %q", semNome.NomeCompleto())
	}
}

func TestHashECheckPassword(t *testing.T) {
	hash, err := HashPassword("senha-forte")
	if err != nil {
		t.Fatalf("HashPassword falhou: %v", err)
	}
	if hash == "senha-forte" {
		t.Fatal("a senha não deveria ser armazenada em texto puro")
	}
	if !CheckPassword(hash, "senha-forte") {
		t.Error("a senha correta deveria validar")
	}
	if CheckPassword(hash, "senha-errada") {
		t.Error("uma senha incorreta não deveria validar")
	}
}

func TestEnderecoString(t *testing.T) {
	endereco := Endereco{Rua: "Rua das Flores", Numero: "123", Bairro: "Centro", Cidade: "Campinas", Estado: "SP"}
	esperado := "Rua das Flores, 123 - Centro, Campinas/SP"
	if endereco.String() != esperado {
		t.Errorf("esperado %q, obtido %q", esperado, endereco.String())
	}
}

func TestTamanhoCamisetaOrdem(t *testing.T) {
	for i, tamanho := range TamanhosCamiseta {
		if TamanhoCamisetaOrdem[tamanho] != i {
			t.Errorf("tamanho %s: posição esperada %d, obtida %d", tamanho, i, TamanhoCamisetaOrdem[tamanho])
		}
	}
}
