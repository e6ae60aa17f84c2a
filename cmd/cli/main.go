package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"

	"github.com/wadjakorntonsri/stacc/pkg/adapters/repository/sqlite"
	"github.com/wadjakorntonsri/stacc/pkg/config"
	"github.com/wadjakorntonsri/stacc/pkg/core/domain"
	"github.com/wadjakorntonsri/stacc/pkg/logging"
)

const usage = "expected 'export', 'import', 'seed' or 'token' subcommands"

func main() {
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	exportWhat := exportCmd.String("what", "posts", "posts or visitors")

	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	importFile := importCmd.String("file", "", "JSON file of posts to import")

	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	seedBackgrounds := seedCmd.String("backgrounds", "", "file with one background link per line")
	seedStories := seedCmd.String("stories", "", "file with one story per line")

	tokenCmd := flag.NewFlagSet("token", flag.ExitOnError)
	tokenSubject := tokenCmd.String("subject", "admin", "token subject")
	tokenTTL := tokenCmd.Duration("ttl", 24*time.Hour, "token lifetime")

	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: "console", Output: os.Stderr})

	// token needs no database.
	if os.Args[1] == "token" {
		tokenCmd.Parse(os.Args[2:])
		doToken(cfg, *tokenSubject, *tokenTTL)
		return
	}

	repo, err := sqlite.NewSQLiteRepository(cfg.DatabaseURL, sqlite.Tables{
		Posts:       cfg.PostsTable,
		Visitors:    cfg.VisitorsTable,
		Backgrounds: cfg.BackgroundsTable,
		Stories:     cfg.StoriesTable,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to connect to db")
	}
	defer repo.Close()

	ctx := context.Background()
	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		doExport(ctx, repo, *exportWhat)
	case "import":
		importCmd.Parse(os.Args[2:])
		if *importFile == "" {
			importCmd.PrintDefaults()
			os.Exit(1)
		}
		doImport(ctx, repo, *importFile)
	case "seed":
		seedCmd.Parse(os.Args[2:])
		if *seedBackgrounds == "" && *seedStories == "" {
			seedCmd.PrintDefaults()
			os.Exit(1)
		}
		doSeed(ctx, repo, *seedBackgrounds, *seedStories)
	default:
		fmt.Println(usage)
		os.Exit(1)
	}
}

func doExport(ctx context.Context, repo *sqlite.SQLiteRepository, what string) {
	var (
		out any
		err error
	)
	switch what {
	case "posts":
		out, err = repo.ListPosts(ctx)
	case "visitors":
		out, err = repo.DumpVisitors(ctx)
	default:
		logging.Fatal().Str("what", what).Msg("export supports posts or visitors")
	}
	if err != nil {
		logging.Fatal().Err(err).Msg("Export failed")
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		logging.Fatal().Err(err).Msg("Encode failed")
	}
}

// doImport upserts posts by post_id. Existing view counts are kept.
func doImport(ctx context.Context, repo *sqlite.SQLiteRepository, filename string) {
	file, err := os.Open(filename)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open file")
	}
	defer file.Close()

	var posts []domain.Post
	if err := json.NewDecoder(file).Decode(&posts); err != nil {
		logging.Fatal().Err(err).Msg("Decode failed")
	}

	count := 0
	for i := range posts {
		p := &posts[i]
		if p.PostID == "" {
			logging.Warn().Int("index", i).Msg("Skipping post without post_id")
			continue
		}
		if err := repo.UpsertPost(ctx, p); err != nil {
			logging.Error().Err(err).Str("post_id", p.PostID).Msg("Failed to import post")
			continue
		}
		count++
	}
	logging.Info().Int("count", count).Msg("Imported posts")
}

func doSeed(ctx context.Context, repo *sqlite.SQLiteRepository, backgrounds, stories string) {
	if backgrounds != "" {
		n := seedLines(backgrounds, func(line string) error { return repo.AddBackground(ctx, line) })
		logging.Info().Int("count", n).Msg("Seeded backgrounds")
	}
	if stories != "" {
		n := seedLines(stories, func(line string) error { return repo.AddStory(ctx, line) })
		logging.Info().Int("count", n).Msg("Seeded stories")
	}
}

func seedLines(filename string, add func(string) error) int {
	file, err := os.Open(filename)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open file")
	}
	defer file.Close()

	count := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := add(line); err != nil {
			logging.Error().Err(err).Str("value", line).Msg("Failed to seed")
			continue
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		logging.Fatal().Err(err).Msg("Read failed")
	}
	return count
}

// doToken prints an admin token signed with ADMIN_JWT_SECRET.
func doToken(cfg *config.Config, subject string, ttl time.Duration) {
	if !cfg.AdminEnabled() {
		logging.Fatal().Msg("ADMIN_JWT_SECRET is not set")
	}
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.AdminJWTSecret))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to sign token")
	}
	fmt.Println(token)
}
