package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/hearthvale/charsheet/internal/config"
	"github.com/hearthvale/charsheet/internal/dice"
	"github.com/hearthvale/charsheet/internal/entities"
	"github.com/hearthvale/charsheet/internal/repositories/characters"
	characterService "github.com/hearthvale/charsheet/internal/services/character"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var repo characters.Repository
	switch cfg.Storage.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := client.Ping(ctx).Err(); err != nil {
			cancel()
			log.Fatalf("Failed to connect to Redis at %s: %v", cfg.Redis.Addr, err)
		}
		cancel()

		repo = characters.NewRedisRepository(&characters.RedisRepoConfig{Client: client})
	case "memory":
		repo = characters.NewInMemoryRepository()
	}

	svc, err := characterService.NewService(&characterService.ServiceConfig{Repository: repo})
	if err != nil {
		log.Fatalf("Failed to create character service: %v", err)
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	ctx := context.Background()

	switch os.Args[1] {
	case "list":
		runList(ctx, svc)
	case "show":
		requireArg(3, "show <name>")
		runShow(ctx, svc, os.Args[2])
	case "delete":
		requireArg(3, "delete <name>")
		if err := svc.DeleteCharacter(ctx, os.Args[2]); err != nil {
			log.Fatalf("Failed to delete %q: %v", os.Args[2], err)
		}
		fmt.Printf("Deleted %s\n", os.Args[2])
	case "demo":
		name := "Demo Character"
		if len(os.Args) > 2 {
			name = os.Args[2]
		}
		runDemo(ctx, svc, name)
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: sheet <list|show <name>|delete <name>|demo [name]>")
}

func requireArg(n int, form string) {
	if len(os.Args) < n {
		fmt.Fprintf(os.Stderr, "usage: sheet %s\n", form)
		os.Exit(1)
	}
}

func runList(ctx context.Context, svc characterService.Service) {
	records, err := svc.ListCharacters(ctx)
	if err != nil {
		log.Fatalf("Failed to list characters: %v", err)
	}

	if len(records) == 0 {
		fmt.Println("No saved characters")
		return
	}
	for _, record := range records {
		saved := time.UnixMilli(record.Timestamp).Format(time.RFC3339)
		fmt.Printf("%-24s level %-3d hash %-8s saved %s\n", record.Name, record.Data.Level, record.Hash, saved)
	}
}

func runShow(ctx context.Context, svc characterService.Service, name string) {
	result, err := svc.LoadCharacter(ctx, name)
	if err != nil {
		log.Fatalf("Failed to load %q: %v", name, err)
	}

	c := result.Character
	stats := c.GetEffectiveStats()

	fmt.Printf("%s (level %d", name, c.Level)
	if c.Race != "" {
		fmt.Printf(" %s", c.Race)
	}
	fmt.Println(")")
	fmt.Printf("  STR %d  DEX %d  INT %d\n", stats.Str, stats.Dex, stats.Int)
	fmt.Printf("  HP %d  AC %d\n", c.HP, c.ArmorClass())
	fmt.Printf("  Sorcery %d/%d  Finesse %d/%d  Maneuver %d/%d\n",
		c.Sorcery.Current, c.Sorcery.Max,
		c.Finesse.Current, c.Finesse.Max,
		c.Maneuver.Current, c.Maneuver.Max)
	for _, item := range c.Inventory.Items() {
		marker := " "
		if item.Equipped {
			marker = "*"
		}
		fmt.Printf("  %s %s (%s)\n", marker, item.Name, item.Type)
	}
	if !result.HashValid {
		fmt.Println("  WARNING: save hash mismatch; state reconstructed best-effort")
	}
}

func runDemo(ctx context.Context, svc characterService.Service, name string) {
	dice.SetMode(dice.ModeRandom)

	c := entities.NewCharacter(&entities.CharacterConfig{
		Name:          name,
		High:          entities.AttributeStrength,
		Mid:           entities.AttributeDexterity,
		Race:          "half-orc",
		RacialBonuses: []entities.Attribute{entities.AttributeStrength},
	})

	for _, attr := range []entities.Attribute{entities.AttributeStrength, entities.AttributeDexterity} {
		if err := c.LevelUp(attr); err != nil {
			log.Fatalf("Level-up failed: %v", err)
		}
	}

	sword := c.Inventory.AddItem(&entities.Item{
		Name:               "Longsword",
		Type:               entities.ItemTypeWeapon,
		Subtype:            entities.SubtypeOneHanded,
		DamageDie:          8,
		GoverningAttribute: entities.AttributeStrength,
		Enchantment:        1,
	})
	if result := c.EquipItem(sword.ID); !result.Success {
		log.Fatalf("Equip failed: %s", result.Message)
	}

	attack, err := c.MainHandAttackRoll()
	if err != nil {
		log.Fatalf("Attack roll failed: %v", err)
	}
	damage, err := c.MainHandDamageRoll()
	if err != nil {
		log.Fatalf("Damage roll failed: %v", err)
	}
	fmt.Printf("Attack: %s\n", attack.Breakdown)
	fmt.Printf("Damage: %s\n", damage.Breakdown)

	record, err := svc.SaveCharacter(ctx, c, name)
	if err != nil {
		log.Fatalf("Save failed: %v", err)
	}
	fmt.Printf("Saved %q with hash %s\n", name, record.Hash)

	loaded, err := svc.LoadCharacter(ctx, name)
	if err != nil {
		log.Fatalf("Load failed: %v", err)
	}
	fmt.Printf("Reloaded %q: level %d, HP %d, hash valid: %v\n",
		name, loaded.Character.Level, loaded.Character.HP, loaded.HashValid)
}
