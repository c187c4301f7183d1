package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpcservice "leaguestats/api/grpc"

	"github.com/goccy/go-json"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Command line client of the summary gRPC service.
// Usage: fetcher -riot-id "Name#Tag" [-region europe] [-mode ranked] [-size all]
func main() {
	addr := flag.String("addr", "localhost:50051", "summary service address")
	riotId := flag.String("riot-id", "", "player Riot ID, as GameName#TagLine")
	region := flag.String("region", "americas", "routing group")
	mode := flag.String("mode", "all", "all, ranked, unranked, aram or arena")
	size := flag.String("size", "", `"all" or a match count`)
	srOnly := flag.Bool("sr-only", true, "Summoner's Rift only analytics on ranked and unranked")
	timeout := flag.Duration("timeout", 2*time.Minute, "call deadline")
	flag.Parse()

	if *riotId == "" {
		flag.Usage()
		os.Exit(2)
	}

	params := map[string]any{
		"riotId": *riotId,
		"region": *region,
		"mode":   *mode,
		"srOnly": *srOnly,
	}
	if *size != "" {
		params["size"] = *size
	}

	if err := run(*addr, *timeout, params); err != nil {
		log.Fatal(err)
	}
}

// Call the service once and print the summary.
func run(addr string, timeout time.Duration, params map[string]any) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("error to connect to the gRPC server: %w", err)
	}
	defer conn.Close()

	summary, err := grpcservice.NewSummaryClient(conn, timeout).GetSummary(ctx, params)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("couldn't encode the summary: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
