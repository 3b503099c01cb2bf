package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"hotel-booking/internal/pkg/password"
)

// hashpw reads an admin password from stdin and prints the bcrypt hash to
// put in ADMIN_PASSWORD_HASH.
func main() {
	cost := flag.Int("cost", password.DefaultCost, "bcrypt cost")
	flag.Parse()

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		slog.Error("failed to read password from stdin", "error", err)
		os.Exit(1)
	}

	hash, err := password.HashPasswordWithCost(strings.TrimRight(line, "\r\n"), *cost)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
