// Seeder populates a database with generated profiles, communities and
// memberships for local development. By default it uses deterministic mock
// AI services so no model server is needed; pass -real-ai to embed with an
// OpenAI-compatible service instead.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	supernetwork "github.com/SriramKintada/SuperNetworkAI"
	"github.com/SriramKintada/SuperNetworkAI/ai"
	"github.com/SriramKintada/SuperNetworkAI/ai/mock"
	"github.com/SriramKintada/SuperNetworkAI/core"
	"github.com/brianvoe/gofakeit/v6"
)

var intents = []string{
	"Looking for a technical cofounder to build an AI-powered product.",
	"Seeking early-stage investors for a B2B SaaS startup.",
	"Open to advising founders on go-to-market strategy.",
	"Looking for design partners in the healthcare space.",
	"Hiring senior backend engineers for a fintech platform.",
	"Seeking a mentor with experience scaling marketplaces.",
	"Looking for collaborators on open-source developer tools.",
	"Exploring consulting engagements in data engineering.",
}

var skillPool = []string{
	"Go", "Python", "TypeScript", "Rust", "machine learning", "LLMs",
	"distributed systems", "product management", "growth marketing",
	"fundraising", "sales", "UX design", "data engineering", "DevOps",
	"smart contracts", "mobile development", "security",
}

var industryPool = []string{
	"fintech", "healthcare", "developer tools", "e-commerce", "climate",
	"education", "logistics", "real estate", "gaming", "biotech",
}

func main() {
	dbPath := flag.String("db", "./network_db", "path to BadgerDB database directory")
	count := flag.Int("count", 50, "number of profiles to generate")
	communities := flag.Int("communities", 3, "number of communities to generate")
	seed := flag.Int64("seed", 0, "random seed (0 = random)")
	realAI := flag.Bool("real-ai", false, "embed with a real OpenAI-compatible service")
	aiHost := flag.String("ai-host", "http://localhost:11434/v1", "OpenAI-compatible service host URL")
	embeddingModel := flag.String("embedding-model", "text-embedding-3-small", "embedding model name")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if *seed != 0 {
		gofakeit.Seed(*seed)
	}

	opts := []supernetwork.NetworkOption{supernetwork.WithSyncRefresh()}
	if *realAI {
		opts = append(opts, supernetwork.WithAIConfig(ai.NewConfig(
			ai.WithHost(*aiHost),
			ai.WithEmbeddingModel(*embeddingModel),
		)))
	} else {
		opts = append(opts, supernetwork.WithAIProvider(mock.NewMockProvider()))
	}

	network, err := supernetwork.Open(*dbPath, opts...)
	if err != nil {
		slog.Error("failed to open network", "error", err)
		os.Exit(1)
	}
	defer network.Close()

	ctx := context.Background()

	communityIds := make([]core.ID, *communities)
	for i := range communityIds {
		communityIds[i] = core.NewID()
	}

	for i := 0; i < *count; i++ {
		profile := fakeProfile()
		if err := network.SaveProfile(ctx, profile); err != nil {
			slog.Error("failed to save profile", "name", profile.Name, "error", err)
			os.Exit(1)
		}

		// Every user joins one or two communities.
		joins := 1 + gofakeit.Number(0, 1)
		for _, c := range pickCommunities(communityIds, joins) {
			membership := &core.CommunityMembership{
				CommunityId:        c,
				UserId:             profile.UserId,
				Status:             core.MembershipActive,
				VisibleInCommunity: gofakeit.Bool(),
			}
			if err := network.JoinCommunity(ctx, membership); err != nil {
				slog.Error("failed to save membership", "user", profile.UserId, "error", err)
				os.Exit(1)
			}
		}

		if (i+1)%10 == 0 {
			slog.Info("seeding", "profiles", i+1)
		}
	}

	fmt.Printf("Seeded %d profiles across %d communities in %s\n", *count, *communities, *dbPath)
	for i, c := range communityIds {
		fmt.Printf("  community %d: %s\n", i+1, c)
	}
}

func fakeProfile() *core.Profile {
	job := gofakeit.Job()
	visibility := core.VisibilityPublic
	switch gofakeit.Number(0, 9) {
	case 0:
		visibility = core.VisibilityPrivate
	case 1, 2:
		visibility = core.VisibilityCommunityOnly
	}

	return &core.Profile{
		Id:                core.NewID(),
		UserId:            core.NewID(),
		Name:              gofakeit.Name(),
		Headline:          fmt.Sprintf("%s at %s", job.Title, job.Company),
		Bio:               gofakeit.Paragraph(1, 3, 12, " "),
		ExperienceSummary: fmt.Sprintf("%d years across %s and %s.", gofakeit.Number(2, 25), gofakeit.RandomString(industryPool), gofakeit.RandomString(industryPool)),
		IntentText:        gofakeit.RandomString(intents),
		Skills:            pickStrings(skillPool, gofakeit.Number(3, 6)),
		Industries:        pickStrings(industryPool, gofakeit.Number(1, 3)),
		ExpertiseAreas:    pickStrings(skillPool, gofakeit.Number(1, 3)),
		Location:          fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.Country()),
		AllRoles:          []string{job.Title},
		AllCompanies:      []string{job.Company},
		EducationSummary:  fmt.Sprintf("%s, %s", gofakeit.RandomString([]string{"BSc", "MSc", "MBA", "PhD"}), gofakeit.Company()),
		Visibility:        visibility,
		ShowInSearch:      gofakeit.Number(0, 9) > 0,
	}
}

func pickStrings(pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	picked := make([]string, 0, n)
	seen := make(map[string]bool, n)
	for len(picked) < n {
		s := gofakeit.RandomString(pool)
		if !seen[s] {
			seen[s] = true
			picked = append(picked, s)
		}
	}
	return picked
}

func pickCommunities(pool []core.ID, n int) []core.ID {
	if n > len(pool) {
		n = len(pool)
	}
	picked := make([]core.ID, 0, n)
	seen := make(map[core.ID]bool, n)
	for len(picked) < n {
		c := pool[gofakeit.Number(0, len(pool)-1)]
		if !seen[c] {
			seen[c] = true
			picked = append(picked, c)
		}
	}
	return picked
}
