package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	appModels "github.com/yigit/conexao/internal/app/models"
	appRepos "github.com/yigit/conexao/internal/app/repositories"
	"github.com/yigit/conexao/internal/pkg/auth"
)

// DemoPassword is the password of every fixture account.
const DemoPassword = "conexao123"

// Fixture user IDs referenced by tests and templates.
const (
	UserAna     = "u-ana"
	UserBruno   = "u-bruno"
	UserCarla   = "u-carla"
	UserDiego   = "u-diego"
	UserInstitu = "u-maos-dadas"
	UserEduarda = "u-eduarda"
	UserFelipe  = "u-felipe"
	UserAdmin   = "u-admin"
)

// CreateDefaultData loads the fixture data set into the repositories,
// replacing whatever they held.
func CreateDefaultData(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	snap, err := DefaultSnapshot(time.Now())
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to build fixture data")
		return err
	}

	repos.Load(snap)
	lgr.Info().
		Int("users", len(snap.Users)).
		Int("favors", len(snap.Favors)).
		Int("communities", len(snap.Communities)).
		Int("missions", len(snap.Missions)).
		Int("notifications", len(snap.Notifications)).
		Int("reports", len(snap.Reports)).
		Msg("Fixture data loaded")
	return nil
}

// DefaultSnapshot builds the fixture data set with timestamps relative to now.
func DefaultSnapshot(now time.Time) (*appRepos.Snapshot, error) {
	hash, err := auth.HashPasswordWithCost(DemoPassword, bcrypt.MinCost)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}

	ago := func(d time.Duration) time.Time { return now.Add(-d) }
	day := 24 * time.Hour

	return &appRepos.Snapshot{
		Users:         fixtureUsers(hash, ago, day),
		Favors:        fixtureFavors(ago, day),
		Communities:   fixtureCommunities(ago, day),
		Missions:      fixtureMissions(),
		Notifications: fixtureNotifications(ago),
		Reports:       fixtureReports(ago, day),
	}, nil
}

func fixtureUsers(hash string, ago func(time.Duration) time.Time, day time.Duration) []*appModels.User {
	sponsor := UserInstitu
	return []*appModels.User{
		{
			ID: UserAna, Name: "Ana Beatriz Souza", DisplayName: "Ana", Email: "ana@conexao.org",
			Phone: "(11) 98765-4321", Bio: "Professora aposentada, adoro ajudar com reforço escolar e jardinagem.",
			Reputation: 4.8, FavorsCompleted: 23, FavorsRequested: 7, JoinDate: ago(420 * day),
			Role: appModels.RoleUser, PasswordHash: hash,
		},
		{
			ID: UserBruno, Name: "Bruno Henrique Lima", DisplayName: "Bruno", Email: "bruno@conexao.org",
			Phone: "(11) 99876-1234", Bio: "Eletricista nas horas vagas. Pode chamar para pequenos reparos.",
			Reputation: 4.5, FavorsCompleted: 12, FavorsRequested: 3, JoinDate: ago(300 * day),
			SponsorID: &sponsor, Role: appModels.RoleUser, PasswordHash: hash,
		},
		{
			ID: UserCarla, Name: "Carla Mendes", DisplayName: "Carla", Email: "carla@conexao.org",
			Phone: "(21) 98888-7777", Bio: "Mãe de dois, sempre precisando de uma mão com mudanças e caronas.",
			Reputation: 4.2, FavorsCompleted: 4, FavorsRequested: 11, JoinDate: ago(200 * day),
			SponsorID: &sponsor, Role: appModels.RoleUser, PasswordHash: hash,
		},
		{
			ID: UserDiego, Name: "Diego Santos", DisplayName: "Diego", Email: "diego@conexao.org",
			Phone: "(31) 97777-6666", Bio: "Estudante de engenharia, ajudo com informática e montagem de móveis.",
			Reputation: 3.9, FavorsCompleted: 6, FavorsRequested: 2, JoinDate: ago(90 * day),
			Role: appModels.RoleUser, PasswordHash: hash,
		},
		{
			ID: UserInstitu, Name: "Instituto Mãos Dadas", DisplayName: "Mãos Dadas", Email: "contato@maosdadas.org",
			Phone: "(11) 3333-4444", Bio: "ONG que apoia voluntariado de bairro desde 2009.",
			Reputation: 5.0, FavorsCompleted: 40, FavorsRequested: 18, JoinDate: ago(600 * day),
			Role: appModels.RoleUser, PasswordHash: hash,
		},
		{
			ID: UserEduarda, Name: "Eduarda Rocha", DisplayName: "Duda", Email: "duda@conexao.org",
			Phone: "(41) 96666-5555", Bio: "Streamer de jogos, organizo campanhas solidárias com a comunidade.",
			Reputation: 4.6, FavorsCompleted: 9, FavorsRequested: 5, JoinDate: ago(150 * day),
			Role: appModels.RoleUser, PasswordHash: hash,
		},
		{
			ID: UserFelipe, Name: "Felipe Costa", DisplayName: "Felipe", Email: "felipe@conexao.org",
			Phone: "(51) 95555-4444", Bio: "Recém-chegado ao bairro.",
			Reputation: 3.5, FavorsCompleted: 1, FavorsRequested: 1, JoinDate: ago(20 * day),
			Role: appModels.RoleUser, PasswordHash: hash,
		},
		{
			ID: UserAdmin, Name: "Equipe de Moderação", DisplayName: "Moderação", Email: "admin@conexao.org",
			Bio:        "Conta da equipe que modera a plataforma.",
			Reputation: 5.0, JoinDate: ago(700 * day),
			Role: appModels.RoleAdmin, PasswordHash: hash,
		},
	}
}

func fixtureFavors(ago func(time.Duration) time.Time, day time.Duration) []*appModels.Favor {
	ptr := func(s string) *string { return &s }
	at := func(d time.Duration) *time.Time { t := ago(d); return &t }
	amount := func(v float64) *float64 { return &v }

	return []*appModels.Favor{
		{
			ID: "f-mudanca", Title: "Ajuda para carregar caixas na mudança",
			Description: "Vou mudar de apartamento no sábado e preciso de duas pessoas para carregar caixas até o caminhão.",
			Urgency:     appModels.UrgencyHigh, Location: "Vila Mariana, São Paulo",
			Type: appModels.FavorTypeVolunteer, Participation: appModels.ParticipationCollective, Headcount: 2,
			Status: appModels.FavorStatusOpen, RequesterID: UserCarla, ExecutorIDs: []string{UserDiego},
			CommunityID: ptr("c-vila-mariana"), CreatedAt: ago(5 * time.Hour),
		},
		{
			ID: "f-chuveiro", Title: "Trocar resistência do chuveiro",
			Description: "A resistência do chuveiro queimou. Tenho a peça nova, só preciso de alguém que saiba instalar com segurança.",
			Urgency:     appModels.UrgencyMedium, Location: "Pinheiros, São Paulo",
			Type: appModels.FavorTypePaid, Amount: amount(50), Participation: appModels.ParticipationIndividual,
			Status: appModels.FavorStatusOpen, RequesterID: UserAna, CreatedAt: ago(26 * time.Hour),
		},
		{
			ID: "f-reforco", Title: "Reforço de matemática para o 7º ano",
			Description: "Meu filho está com dificuldade em frações. Procuro alguém para duas aulas de uma hora nesta semana.",
			Urgency:     appModels.UrgencyLow, Location: "Online",
			Type: appModels.FavorTypeVolunteer, Participation: appModels.ParticipationIndividual,
			Status: appModels.FavorStatusAccepted, RequesterID: UserCarla, ExecutorID: ptr(UserAna),
			CreatedAt: ago(3 * day), AcceptedAt: at(2 * day),
		},
		{
			ID: "f-computador", Title: "Formatar computador antigo",
			Description: "Quero doar um computador para a escola do bairro, mas ele precisa ser formatado e ter um sistema leve instalado.",
			Urgency:     appModels.UrgencyLow, Location: "Savassi, Belo Horizonte",
			Type: appModels.FavorTypeVolunteer, Participation: appModels.ParticipationIndividual,
			Status: appModels.FavorStatusCompleted, RequesterID: UserInstitu, ExecutorID: ptr(UserDiego),
			CreatedAt: ago(15 * day), AcceptedAt: at(14 * day), CompletedAt: at(10 * day),
			RequesterRating: &appModels.Rating{Score: 5, Feedback: "Rápido e muito atencioso!", RatedAt: ago(9 * day)},
		},
		{
			ID: "f-horta", Title: "Mutirão na horta comunitária",
			Description: "Precisamos de voluntários para preparar os canteiros e plantar mudas na horta da praça.",
			Urgency:     appModels.UrgencyMedium, Location: "Praça do Pôr do Sol, São Paulo",
			Type: appModels.FavorTypeVolunteer, Participation: appModels.ParticipationCollective, Headcount: 3,
			Status: appModels.FavorStatusCompleted, RequesterID: UserInstitu,
			ExecutorIDs: []string{UserAna, UserBruno, UserEduarda}, CommunityID: ptr("c-hortas"),
			CreatedAt: ago(30 * day), AcceptedAt: at(28 * day), CompletedAt: at(25 * day),
			RequesterRating: &appModels.Rating{Score: 5, Feedback: "Equipe incrível, a horta ficou linda.", RatedAt: ago(24 * day)},
			ExecutorRatings: map[string]*appModels.Rating{
				UserAna: {Score: 5, Feedback: "Muito bem organizado.", RatedAt: ago(24 * day)},
			},
		},
		{
			ID: "f-carona", Title: "Carona até o hospital na quinta",
			Description: "Tenho consulta às 8h no Hospital das Clínicas e não consigo ir de ônibus com a perna imobilizada.",
			Urgency:     appModels.UrgencyHigh, Location: "Tijuca, Rio de Janeiro",
			Type: appModels.FavorTypeVolunteer, Participation: appModels.ParticipationIndividual,
			Status: appModels.FavorStatusCancelled, RequesterID: UserCarla,
			CreatedAt: ago(8 * day), CancelledAt: at(7 * day),
		},
		{
			ID: "f-pet", Title: "Passear com cachorro durante a semana",
			Description: "Vou viajar a trabalho e preciso de alguém para passear com o Thor, um labrador dócil, por cinco dias.",
			Urgency:     appModels.UrgencyMedium, Location: "Moinhos de Vento, Porto Alegre",
			Type: appModels.FavorTypePaid, Amount: amount(120), Participation: appModels.ParticipationIndividual,
			Status: appModels.FavorStatusAccepted, RequesterID: UserFelipe, ExecutorID: ptr(UserBruno),
			CreatedAt: ago(2 * day), AcceptedAt: at(36 * time.Hour),
		},
		{
			ID: "f-live", Title: "Moderadores para live beneficente",
			Description: "Live de arrecadação para o abrigo de animais no domingo. Procuro duas pessoas para moderar o chat.",
			Urgency:     appModels.UrgencyMedium, Location: "Online",
			Type: appModels.FavorTypeVolunteer, Participation: appModels.ParticipationCollective, Headcount: 2,
			Status: appModels.FavorStatusOpen, RequesterID: UserEduarda, CommunityID: ptr("c-streamers"),
			CreatedAt: ago(10 * time.Hour),
		},
		{
			ID: "f-prateleira", Title: "Montar prateleira na sala",
			Description: "Comprei uma prateleira e não tenho furadeira. Alguém pode ajudar a instalar na parede?",
			Urgency:     appModels.UrgencyLow, Location: "Vila Mariana, São Paulo",
			Type: appModels.FavorTypePaid, Amount: amount(40), Participation: appModels.ParticipationIndividual,
			Status: appModels.FavorStatusCompleted, RequesterID: UserAna, ExecutorID: ptr(UserBruno),
			CommunityID: ptr("c-vila-mariana"),
			CreatedAt:   ago(12 * day), AcceptedAt: at(11 * day), CompletedAt: at(9 * day),
		},
	}
}

func fixtureCommunities(ago func(time.Duration) time.Time, day time.Duration) []*appModels.Community {
	return []*appModels.Community{
		{
			ID: "c-vila-mariana", Name: "Vizinhos da Vila Mariana",
			Description: "Grupo de ajuda mútua entre moradores da Vila Mariana.",
			Type:        appModels.CommunityPublic, CreatorID: UserAna,
			MemberIDs: []string{UserAna, UserCarla, UserDiego, UserBruno}, CreatedAt: ago(400 * day),
		},
		{
			ID: "c-hortas", Name: "Hortas Urbanas",
			Description: "Voluntários que cuidam das hortas comunitárias da cidade.",
			Type:        appModels.CommunityPublic, CreatorID: UserInstitu,
			MemberIDs: []string{UserInstitu, UserAna, UserBruno, UserEduarda}, CreatedAt: ago(500 * day),
		},
		{
			ID: "c-streamers", Name: "Streamers do Bem",
			Description: "Criadores de conteúdo organizando lives e campanhas solidárias.",
			Type:        appModels.CommunityPublic, CreatorID: UserEduarda,
			MemberIDs: []string{UserEduarda}, CreatedAt: ago(120 * day),
		},
		{
			ID: "c-condominio", Name: "Condomínio Jardim das Flores",
			Description: "Grupo fechado dos moradores do condomínio.",
			Type:        appModels.CommunityPrivate, CreatorID: UserCarla,
			MemberIDs: []string{UserCarla}, CreatedAt: ago(60 * day),
		},
	}
}

func fixtureMissions() []*appModels.Mission {
	return []*appModels.Mission{
		{
			ID: "m-live-solidaria", Title: "Live Solidária", Niche: appModels.NicheStreamer,
			Description: "Realize uma live e convide sua audiência a aceitar favores da plataforma.",
			Goals: []appModels.Goal{
				{Description: "Divulgar a Conexão Solidária durante uma live", Completed: true},
				{Description: "Conseguir 10 favores aceitos pela audiência"},
				{Description: "Publicar o resultado da campanha"},
			},
		},
		{
			ID: "m-desafio-semanal", Title: "Desafio Semanal", Niche: appModels.NicheStreamer,
			Description: "Desafie sua comunidade a completar favores durante a semana.",
			Goals: []appModels.Goal{
				{Description: "Criar um favor coletivo"},
				{Description: "Completar 5 favores em 7 dias"},
			},
		},
		{
			ID: "m-voluntariado", Title: "Rede de Voluntariado", Niche: appModels.NicheONG,
			Description: "Cadastre as demandas da sua ONG como favores coletivos.",
			Goals: []appModels.Goal{
				{Description: "Criar uma comunidade para a ONG", Completed: true},
				{Description: "Publicar 3 favores coletivos", Completed: true},
				{Description: "Reunir 20 voluntários"},
			},
		},
		{
			ID: "m-doacoes", Title: "Ponte de Doações", Niche: appModels.NicheONG,
			Description: "Conecte doadores a famílias atendidas pela ONG.",
			Goals: []appModels.Goal{
				{Description: "Mapear 10 famílias atendidas"},
				{Description: "Concluir 10 favores de entrega de doações"},
			},
		},
		{
			ID: "m-empresa-cidada", Title: "Empresa Cidadã", Niche: appModels.NicheEmpresa,
			Description: "Incentive colaboradores a dedicar horas de voluntariado.",
			Goals: []appModels.Goal{
				{Description: "Convidar 15 colaboradores"},
				{Description: "Somar 40 horas de favores voluntários"},
				{Description: "Patrocinar uma comunidade de bairro"},
			},
		},
	}
}

func fixtureNotifications(ago func(time.Duration) time.Time) []*appModels.Notification {
	return []*appModels.Notification{
		{
			ID: "n-1", UserID: UserCarla, Type: appModels.NotificationFavorAccepted,
			Title: "Seu favor foi aceito", Message: "Ana aceitou \"Reforço de matemática para o 7º ano\".",
			Link: "/favors/f-reforco", CreatedAt: ago(48 * time.Hour),
		},
		{
			ID: "n-2", UserID: UserCarla, Type: appModels.NotificationFavorAccepted,
			Title: "Novo participante", Message: "Diego entrou em \"Ajuda para carregar caixas na mudança\".",
			Link: "/favors/f-mudanca", CreatedAt: ago(3 * time.Hour),
		},
		{
			ID: "n-3", UserID: UserDiego, Type: appModels.NotificationFavorRated,
			Title: "Você recebeu uma avaliação", Message: "Instituto Mãos Dadas avaliou seu favor com 5 estrelas.",
			Link: "/favors/f-computador", Read: true, CreatedAt: ago(216 * time.Hour),
		},
		{
			ID: "n-4", UserID: UserAna, Type: appModels.NotificationFavorCompleted,
			Title: "Favor concluído", Message: "\"Montar prateleira na sala\" foi concluído. Avalie o Bruno!",
			Link: "/favors/f-prateleira", CreatedAt: ago(216 * time.Hour),
		},
		{
			ID: "n-5", UserID: UserAna, Type: appModels.NotificationSystem,
			Title: "Bem-vinda à Conexão Solidária", Message: "Complete seu perfil para receber mais pedidos de ajuda.",
			Link: "/profile/edit", Read: true, CreatedAt: ago(420 * 24 * time.Hour),
		},
		{
			ID: "n-6", UserID: UserFelipe, Type: appModels.NotificationFavorAccepted,
			Title: "Seu favor foi aceito", Message: "Bruno aceitou \"Passear com cachorro durante a semana\".",
			Link: "/favors/f-pet", CreatedAt: ago(36 * time.Hour),
		},
	}
}

func fixtureReports(ago func(time.Duration) time.Time, day time.Duration) []*appModels.Report {
	admin := UserAdmin
	reviewedAt := ago(5 * day)
	return []*appModels.Report{
		{
			ID: "r-1", ReporterID: UserAna, TargetType: appModels.ReportTargetFavor, TargetID: "f-pet",
			Reason: appModels.ReportReasonOther, Comments: "O valor parece muito baixo para cinco dias.",
			Status: appModels.ReportStatusPending, CreatedAt: ago(20 * time.Hour),
		},
		{
			ID: "r-2", ReporterID: UserCarla, TargetType: appModels.ReportTargetUser, TargetID: UserFelipe,
			Reason: appModels.ReportReasonSpam, Comments: "Mandou a mesma mensagem várias vezes.",
			Status: appModels.ReportStatusIgnored, CreatedAt: ago(6 * day),
			ReviewedBy: &admin, ReviewedAt: &reviewedAt,
		},
	}
}
