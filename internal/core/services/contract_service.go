package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/lucasaveiro/gestor_espacos_app/internal/apperrors"
	"github.com/lucasaveiro/gestor_espacos_app/internal/core/domain"
	portssvc "github.com/lucasaveiro/gestor_espacos_app/internal/core/ports/services"
	"github.com/lucasaveiro/gestor_espacos_app/internal/utils"
	"github.com/shopspring/decimal"
)

// spaceProfiles is the fixed catalogue of contractable spaces. Slugs are
// part of the public API and must stay stable.
var spaceProfiles = []domain.SpaceProfile{
	{
		Slug:        "estancia-aveiro",
		DisplayName: "Estância Aveiro",
		Address:     "Rua das Flores, 123",
		City:        "Cidade",
		State:       "SP",
		OwnerName:   "Lucas Aveiro",
		OwnerCPF:    "000.000.000-00",
		OwnerRole:   "Sócio-Proprietário",
		Prefix:      "EST",
	},
	{
		Slug:        "rancho-aveiro",
		DisplayName: "Rancho Aveiro",
		Address:     "Estrada Rural, 456",
		City:        "Cidade",
		State:       "SP",
		OwnerName:   "Lucas Aveiro",
		OwnerCPF:    "000.000.000-00",
		OwnerRole:   "Sócio-Proprietário",
		Prefix:      "RAN",
	},
}

// defaultClauses is the standard rental contract body. Placeholders in
// {braces} are substituted at generation time.
var defaultClauses = []domain.ContractClause{
	{
		ID:     "objeto",
		Number: "PRIMEIRA",
		Title:  "DO OBJETO",
		Content: "O presente instrumento tem por objeto a locação do espaço denominado {spaceName}, " +
			"localizado em {spaceAddress}, para a realização do evento especificado neste contrato, " +
			"nas datas, horários e condições aqui estabelecidos.",
	},
	{
		ID:     "periodo",
		Number: "SEGUNDA",
		Title:  "DO PERÍODO E HORÁRIO DE UTILIZAÇÃO",
		Content: "O(A) CONTRATANTE terá direito ao uso do espaço no dia {eventDate}, das {eventStartTime} " +
			"às {eventEndTime} horas. O horário de encerramento deverá ser rigorosamente respeitado, sendo " +
			"vedada qualquer prorrogação sem prévio acordo escrito e pagamento de taxa adicional estipulada " +
			"pela CONTRATADA.",
	},
	{
		ID:     "valor",
		Number: "TERCEIRA",
		Title:  "DO VALOR CONTRATADO",
		Content: "O valor total contratado pela locação do espaço é de {totalValue}, conforme as condições " +
			"de pagamento estabelecidas neste contrato.",
	},
	{
		ID:     "pagamento",
		Number: "QUARTA",
		Title:  "DAS CONDIÇÕES DE PAGAMENTO",
		Content: "O pagamento será realizado da seguinte forma:\n\n" +
			"a) Entrada/Sinal: {depositValue}, com vencimento em {depositDueDate};\n" +
			"b) Valor Restante: {remainingValue}, com vencimento em {remainingDueDate};\n" +
			"c) Forma de pagamento: {paymentMethod}.\n\n" +
			"O não pagamento nas datas acordadas ensejará a aplicação de multa de 2% (dois por cento) sobre " +
			"o valor em atraso, acrescida de juros de 1% (um por cento) ao mês.",
	},
	{
		ID:     "sinal",
		Number: "QUINTA",
		Title:  "DO SINAL E DA RESERVA DE DATA",
		Content: "Para a efetiva reserva da data do evento, o(a) CONTRATANTE deverá realizar o pagamento do " +
			"sinal no valor e prazo estipulados neste contrato. O sinal é irrestituível em caso de desistência " +
			"ou cancelamento por iniciativa do(a) CONTRATANTE, conforme previsto na Cláusula Oitava deste instrumento.",
	},
	{
		ID:     "obrigacoes_contratante",
		Number: "SEXTA",
		Title:  "DAS OBRIGAÇÕES DO(A) CONTRATANTE",
		Content: "São obrigações do(a) CONTRATANTE:\n\n" +
			"a) Efetuar os pagamentos nas datas e formas acordadas;\n" +
			"b) Zelar pelo espaço e por todos os equipamentos e instalações disponibilizados, " +
			"responsabilizando-se por danos causados por si, seus convidados ou prestadores de serviço;\n" +
			"c) Respeitar a capacidade máxima de convidados permitida para o espaço;\n" +
			"d) Não realizar obras, fixações ou alterações no espaço sem autorização prévia e por escrito da CONTRATADA;\n" +
			"e) Retirar todos os pertences, decorações e equipamentos ao término do evento;\n" +
			"f) Responsabilizar-se pelo comportamento de todos os presentes no evento;\n" +
			"g) Apresentar este contrato sempre que solicitado pela CONTRATADA.",
	},
	{
		ID:     "obrigacoes_contratada",
		Number: "SÉTIMA",
		Title:  "DAS OBRIGAÇÕES DA CONTRATADA",
		Content: "São obrigações da CONTRATADA:\n\n" +
			"a) Disponibilizar o espaço limpo, organizado e em perfeitas condições de uso;\n" +
			"b) Garantir o funcionamento de todas as instalações e equipamentos incluídos na locação;\n" +
			"c) Prestar suporte e orientação ao(à) CONTRATANTE durante o período contratado;\n" +
			"d) Manter sigilo sobre os dados pessoais do(a) CONTRATANTE;\n" +
			"e) Comunicar previamente ao(à) CONTRATANTE qualquer situação que possa afetar a realização do evento.",
	},
	{
		ID:     "cancelamento",
		Number: "OITAVA",
		Title:  "DO CANCELAMENTO E DA RESCISÃO",
		Content: "Em caso de cancelamento pelo(a) CONTRATANTE:\n\n" +
			"a) Com mais de 60 (sessenta) dias de antecedência: restituição de 50% do sinal pago;\n" +
			"b) Entre 30 (trinta) e 60 (sessenta) dias de antecedência: perda de 75% do sinal pago;\n" +
			"c) Com menos de 30 (trinta) dias de antecedência: perda integral do sinal pago.\n\n" +
			"Em caso de cancelamento pela CONTRATADA sem motivo justificado: restituição integral dos valores " +
			"pagos, acrescidos de multa correspondente a 20% (vinte por cento) do valor total do contrato.",
	},
	{
		ID:     "capacidade",
		Number: "NONA",
		Title:  "DA CAPACIDADE E DA SEGURANÇA",
		Content: "O(A) CONTRATANTE declara ter ciência da capacidade máxima de convidados permitida para o " +
			"espaço contratado e compromete-se a respeitá-la rigorosamente. É expressamente vedada a entrada " +
			"de número de pessoas além do limite estabelecido. A contratação de profissionais de segurança, " +
			"quando julgada necessária, é de inteira responsabilidade do(a) CONTRATANTE.",
	},
	{
		ID:     "penalidades",
		Number: "DÉCIMA",
		Title:  "DAS PENALIDADES",
		Content: "O descumprimento de qualquer cláusula deste contrato pela parte infratora sujeitará ao " +
			"pagamento de multa no valor equivalente a 10% (dez por cento) sobre o valor total do contrato, " +
			"sem prejuízo da reparação de eventuais danos materiais e morais comprovados.",
	},
	{
		ID:     "disposicoes",
		Number: "DÉCIMA PRIMEIRA",
		Title:  "DAS DISPOSIÇÕES GERAIS",
		Content: "O presente contrato constitui o único e integral acordo entre as partes relativamente ao " +
			"objeto aqui descrito, substituindo todos os entendimentos anteriores, verbais ou escritos. " +
			"Qualquer alteração somente terá validade se realizada por escrito e assinada por ambas as partes. " +
			"O contrato obriga as partes e seus herdeiros e sucessores a qualquer título.",
	},
	{
		ID:     "foro",
		Number: "DÉCIMA SEGUNDA",
		Title:  "DO FORO",
		Content: "As partes elegem o foro da Comarca de {city}/{state} para dirimir quaisquer dúvidas ou " +
			"litígios decorrentes do presente contrato, com expressa renúncia a qualquer outro, por mais " +
			"privilegiado que seja.\n\n" +
			"E por estarem assim justos e contratados, assinam o presente instrumento em 2 (duas) vias de " +
			"igual teor e forma, na presença das testemunhas abaixo identificadas.",
	},
}

type ContractService struct {
	BaseService
	now func() time.Time
}

// NewContractService creates the contract generation service.
func NewContractService() *ContractService {
	return &ContractService{now: time.Now}
}

var _ portssvc.ContractService = (*ContractService)(nil)

func (s *ContractService) ListSpaceProfiles(_ context.Context) []domain.SpaceProfile {
	profiles := make([]domain.SpaceProfile, len(spaceProfiles))
	copy(profiles, spaceProfiles)
	return profiles
}

// GenerateContract substitutes the given data into the default clause set
// for the space. Empty fields render as bracketed placeholders so the draft
// stays editable by hand.
func (s *ContractService) GenerateContract(ctx context.Context, spaceSlug string, data domain.ContractData) (*domain.GeneratedContract, error) {
	profile, ok := findSpaceProfile(spaceSlug)
	if !ok {
		return nil, fmt.Errorf("unknown space %q: %w", spaceSlug, apperrors.ErrNotFound)
	}

	number := data.ContractNumber
	if number == "" {
		number = contractNumber(profile, s.now())
	}

	replacer := strings.NewReplacer(
		"{spaceName}", profile.DisplayName,
		"{spaceAddress}", profile.Address,
		"{city}", profile.City,
		"{state}", profile.State,
		"{ownerName}", profile.OwnerName,
		"{ownerCPF}", profile.OwnerCPF,
		"{ownerRole}", profile.OwnerRole,
		"{contractNumber}", orPlaceholder(number, "[Nº DO CONTRATO]"),
		"{contractDate}", orPlaceholder(utils.FormatDateBR(data.ContractDate), "[DATA DO CONTRATO]"),
		"{clientName}", orPlaceholder(data.ClientName, "[NOME DO CONTRATANTE]"),
		"{clientCPF}", orPlaceholder(data.ClientCPF, "[CPF]"),
		"{clientRG}", orPlaceholder(data.ClientRG, "[RG]"),
		"{clientAddress}", orPlaceholder(data.ClientAddress, "[ENDEREÇO]"),
		"{clientCity}", orPlaceholder(data.ClientCity, "[CIDADE]"),
		"{clientState}", orPlaceholder(data.ClientState, "[ESTADO]"),
		"{clientPhone}", orPlaceholder(data.ClientPhone, "[TELEFONE]"),
		"{clientEmail}", orPlaceholder(data.ClientEmail, "[EMAIL]"),
		"{eventDate}", orPlaceholder(utils.FormatDateBR(data.EventDate), "[DATA DO EVENTO]"),
		"{eventStartTime}", orPlaceholder(data.EventStartTime, "[HORA INÍCIO]"),
		"{eventEndTime}", orPlaceholder(data.EventEndTime, "[HORA FIM]"),
		"{eventType}", orPlaceholder(data.EventType, "[TIPO DO EVENTO]"),
		"{guestCount}", orPlaceholder(data.GuestCount, "[Nº DE CONVIDADOS]"),
		"{totalValue}", orPlaceholder(formatMoney(data.TotalValue), "[VALOR TOTAL]"),
		"{depositValue}", orPlaceholder(formatMoney(data.DepositValue), "[VALOR ENTRADA]"),
		"{depositDueDate}", orPlaceholder(utils.FormatDateBR(data.DepositDueDate), "[DATA ENTRADA]"),
		"{remainingValue}", orPlaceholder(formatMoney(data.RemainingValue), "[VALOR RESTANTE]"),
		"{remainingDueDate}", orPlaceholder(utils.FormatDateBR(data.RemainingDueDate), "[DATA RESTANTE]"),
		"{paymentMethod}", orPlaceholder(data.PaymentMethod, "[FORMA DE PAGAMENTO]"),
	)

	clauses := make([]domain.ContractClause, len(defaultClauses))
	for i, clause := range defaultClauses {
		clause.Content = replacer.Replace(clause.Content)
		clauses[i] = clause
	}

	s.LogInfo(ctx, "contract generated", "space", spaceSlug, "number", number)
	return &domain.GeneratedContract{
		Number:    number,
		SpaceSlug: spaceSlug,
		Clauses:   clauses,
	}, nil
}

func findSpaceProfile(slug string) (domain.SpaceProfile, bool) {
	for _, p := range spaceProfiles {
		if p.Slug == slug {
			return p, true
		}
	}
	return domain.SpaceProfile{}, false
}

func contractNumber(profile domain.SpaceProfile, at time.Time) string {
	return fmt.Sprintf("%s-%s", profile.Prefix, at.Format("20060102"))
}

// formatMoney renders a decimal string as BRL currency; anything unparseable
// comes back empty so the bracketed placeholder shows through.
func formatMoney(value string) string {
	if value == "" {
		return ""
	}
	amount, err := decimal.NewFromString(strings.ReplaceAll(value, ",", "."))
	if err != nil {
		return ""
	}
	return utils.FormatBRL(amount)
}

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return placeholder
	}
	return value
}
