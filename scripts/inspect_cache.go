// +build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"
)

type zone struct {
	Slug    string          `json:"slug"`
	Country json.RawMessage `json:"country"`
}

func countryName(raw json.RawMessage) string {
	var name string
	if json.Unmarshal(raw, &name) == nil {
		return name
	}
	var obj struct {
		Name string `json:"name"`
	}
	_ = json.Unmarshal(raw, &obj)
	return obj.Name
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address")
	prefix := flag.String("prefix", "surfquest:", "key prefix used by the catalog cache")
	flush := flag.Bool("flush", false, "delete catalog keys after printing")
	flag.Parse()

	client := redis.NewClient(&redis.Options{Addr: *redisAddr})
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	var keys []string
	for _, pattern := range []string{"surfzones:*", "surfspots:*", "stats:*"} {
		pattern = *prefix + pattern
		iter := client.Scan(ctx, 0, pattern, 100).Iterator()
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			log.Fatalf("Failed to scan %s: %v", pattern, err)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		ttl, _ := client.TTL(ctx, key).Result()
		size, _ := client.StrLen(ctx, key).Result()
		fmt.Printf("%-60s %8d bytes  ttl=%s\n", key, size, ttl)
	}

	if data, err := client.Get(ctx, *prefix+"surfzones:all").Bytes(); err == nil {
		var zones []zone
		if err := json.Unmarshal(data, &zones); err != nil {
			log.Fatalf("Failed to decode surfzones:all: %v", err)
		}
		perCountry := make(map[string]int)
		for _, z := range zones {
			perCountry[countryName(z.Country)]++
		}
		fmt.Printf("\nsurfzones:all holds %d zones\n", len(zones))
		for country, n := range perCountry {
			if country == "" {
				country = "(no country)"
			}
			fmt.Printf("  %-30s %d\n", country, n)
		}
	}

	if *flush && len(keys) > 0 {
		deleted, err := client.Del(ctx, keys...).Result()
		if err != nil {
			log.Fatalf("Failed to delete keys: %v", err)
		}
		fmt.Printf("\n✓ Deleted %d keys\n", deleted)
	}
}
