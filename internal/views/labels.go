package views

import "github.com/yigit/conexao/internal/app/models"

var statusLabels = map[models.FavorStatus]string{
	models.FavorStatusOpen:      "Aberto",
	models.FavorStatusAccepted:  "Em andamento",
	models.FavorStatusCompleted: "Concluído",
	models.FavorStatusCancelled: "Cancelado",
}

var urgencyLabels = map[models.Urgency]string{
	models.UrgencyLow:    "Baixa",
	models.UrgencyMedium: "Média",
	models.UrgencyHigh:   "Alta",
}

var favorTypeLabels = map[models.FavorType]string{
	models.FavorTypeVolunteer: "Voluntário",
	models.FavorTypePaid:      "Pago",
}

var participationLabels = map[models.ParticipationType]string{
	models.ParticipationIndividual: "Individual",
	models.ParticipationCollective: "Coletivo",
}

var communityTypeLabels = map[models.CommunityType]string{
	models.CommunityPublic:  "Pública",
	models.CommunityPrivate: "Privada",
}

var nicheLabels = map[models.Niche]string{
	models.NicheStreamer: "Streamers",
	models.NicheONG:      "ONGs",
	models.NicheEmpresa:  "Empresas",
}

var reasonLabels = map[models.ReportReason]string{
	models.ReportReasonSpam:          "Spam",
	models.ReportReasonInappropriate: "Conteúdo impróprio",
	models.ReportReasonFraud:         "Fraude ou golpe",
	models.ReportReasonHarassment:    "Assédio",
	models.ReportReasonOther:         "Outro motivo",
}

var reportStatusLabels = map[models.ReportStatus]string{
	models.ReportStatusPending:  "Pendente",
	models.ReportStatusResolved: "Resolvida",
	models.ReportStatusIgnored:  "Ignorada",
}

func label[K ~string](labels map[K]string, k K) string {
	if l, ok := labels[k]; ok {
		return l
	}
	return string(k)
}

func StatusLabel(s models.FavorStatus) string              { return label(statusLabels, s) }
func UrgencyLabel(u models.Urgency) string                 { return label(urgencyLabels, u) }
func FavorTypeLabel(t models.FavorType) string             { return label(favorTypeLabels, t) }
func ParticipationLabel(p models.ParticipationType) string { return label(participationLabels, p) }
func CommunityTypeLabel(t models.CommunityType) string     { return label(communityTypeLabels, t) }
func NicheLabel(n models.Niche) string                     { return label(nicheLabels, n) }
func ReasonLabel(r models.ReportReason) string             { return label(reasonLabels, r) }
func ReportStatusLabel(s models.ReportStatus) string       { return label(reportStatusLabels, s) }
