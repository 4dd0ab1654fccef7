package main

import (
	"bufio"
	"io"
	"strings"

	"pushrelay/internal/infra/auth"

	"github.com/pkg/errors"
)

func readPassword(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", errors.Wrap(err, "failed to read password")
	}

	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("password is empty")
	}

	return password, nil
}

func runHash(password string, cost int) (string, error) {
	hasher := auth.NewBcryptHasher()
	if cost > 0 {
		hasher = auth.NewBcryptHasherWithCost(cost)
	}

	return hasher.Hash(password)
}
