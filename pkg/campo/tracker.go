package campo

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MovimentacoesAPI é o recorte do cliente usado pelo rastreador.
type MovimentacoesAPI interface {
	EnviarMovimentacao(ctx context.Context, tipo string, produtoID, quantidade int64) (*Movimentacao, error)
	ListarMovimentacoes(ctx context.Context, status string) ([]Movimentacao, error)
}

// Tipos de movimentação aceitos pelo rastreador.
const (
	TipoEntrada = "ENTRADA"
	TipoSaida   = "SAIDA"
)

// Status possíveis de uma movimentação.
const (
	StatusPendente  = "PENDENTE"
	StatusAprovada  = "APROVADA"
	StatusRejeitada = "REJEITADA"
)

// Provisoria é uma proposta ainda sem id do backend, identificada por um uuid
// local. Existe apenas entre o registro local e a confirmação do envio; uma
// falha transiente a desfaz.
type Provisoria struct {
	Ref        string // uuid local
	Tipo       string
	ProdutoID  int64
	Quantidade int64
	CriadaEm   time.Time
}

// TrackerMovimentacoes mantém o espelho local das movimentações do entregador.
// É um cache de leitura: as transições PENDENTE → APROVADA/REJEITADA pertencem
// exclusivamente ao processador de aprovação do backend; o rastreador nunca
// muda um status localmente, apenas reconsulta. Pertence a uma única sessão,
// todas as operações locais são síncronas.
type TrackerMovimentacoes struct {
	api         MovimentacoesAPI
	cache       []Movimentacao // última busca bem-sucedida + envios confirmados
	provisorias []Provisoria
}

// NewTrackerMovimentacoes constrói o rastreador sobre o cliente da API.
func NewTrackerMovimentacoes(api MovimentacoesAPI) *TrackerMovimentacoes {
	return &TrackerMovimentacoes{api: api}
}

// Propor valida e envia uma movimentação nova. A entrada inválida falha local
// com ErrInvalidInput, sem tocar na rede. Entre o registro e a confirmação a
// proposta vive como provisória; ErrTransient desfaz a provisória e deixa o
// resto do estado intacto, então repetir Propor é seguro.
func (t *TrackerMovimentacoes) Propor(ctx context.Context, tipo string, produtoID, quantidade int64) (*Movimentacao, error) {
	if tipo != TipoEntrada && tipo != TipoSaida {
		return nil, ErrInvalidInput
	}
	if produtoID <= 0 || quantidade <= 0 {
		return nil, ErrInvalidInput
	}

	prov := Provisoria{
		Ref:        uuid.New().String(),
		Tipo:       tipo,
		ProdutoID:  produtoID,
		Quantidade: quantidade,
		CriadaEm:   time.Now(),
	}
	t.provisorias = append(t.provisorias, prov)

	mov, err := t.api.EnviarMovimentacao(ctx, tipo, produtoID, quantidade)
	t.removerProvisoria(prov.Ref)
	if err != nil {
		return nil, err
	}
	t.cache = append([]Movimentacao{*mov}, t.cache...)
	return mov, nil
}

// Listar devolve as movimentações conhecidas localmente, opcionalmente
// filtradas por status. O resultado vem sempre da última sincronização com o
// backend — nunca de transições sintetizadas aqui.
func (t *TrackerMovimentacoes) Listar(status string) []Movimentacao {
	out := make([]Movimentacao, 0, len(t.cache))
	for _, m := range t.cache {
		if status == "" || m.Status == status {
			out = append(out, m)
		}
	}
	return out
}

// Get devolve a movimentação com o id informado, se conhecida localmente.
func (t *TrackerMovimentacoes) Get(id int64) (Movimentacao, bool) {
	for _, m := range t.cache {
		if m.ID == id {
			return m, true
		}
	}
	return Movimentacao{}, false
}

// Provisorias devolve as propostas ainda sem confirmação do backend.
func (t *TrackerMovimentacoes) Provisorias() []Provisoria {
	out := make([]Provisoria, len(t.provisorias))
	copy(out, t.provisorias)
	return out
}

// Atualizar ressincroniza o espelho local com o backend. Em falha o cache
// anterior é preservado, então o chamador pode seguir lendo dados defasados
// e repetir a sincronização depois.
func (t *TrackerMovimentacoes) Atualizar(ctx context.Context) error {
	list, err := t.api.ListarMovimentacoes(ctx, "")
	if err != nil {
		return err
	}
	t.cache = list
	return nil
}

func (t *TrackerMovimentacoes) removerProvisoria(ref string) {
	for i, p := range t.provisorias {
		if p.Ref == ref {
			t.provisorias = append(t.provisorias[:i], t.provisorias[i+1:]...)
			return
		}
	}
}
