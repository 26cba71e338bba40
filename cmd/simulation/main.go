package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
)

// Smoke client that drives the full chat flow against a running server:
// login, fact disclosure, direct recall, a relayed message, logout.

var (
	baseURL = flag.String("base", "http://localhost:10000", "server base URL")
	name    = flag.String("name", "Sam", "login name")
)

func main() {
	flag.Parse()

	client := &http.Client{Timeout: 90 * time.Second}

	step := color.New(color.FgCyan, color.Bold)
	reply := color.New(color.FgGreen)
	fail := color.New(color.FgRed, color.Bold)

	step.Println("== login ==")
	out, status := post(client, "/auth/login", map[string]string{"name": *name})
	if status != http.StatusOK {
		fail.Printf("login failed (%d): %s\n", status, out)
		os.Exit(1)
	}
	reply.Println(out)

	for _, msg := range []string{
		fmt.Sprintf("my name is %s", *name),
		"I love pizza",
		"what is my name",
		"what do i love",
		"tell me a short fun fact",
	} {
		step.Printf("== chat: %q ==\n", msg)
		out, status = post(client, "/chat", map[string]string{"message": msg, "name": *name})
		if status != http.StatusOK {
			fail.Printf("chat failed (%d): %s\n", status, out)
			os.Exit(1)
		}
		reply.Println(out)
	}

	step.Println("== logout ==")
	out, status = post(client, "/auth/logout", map[string]string{"name": *name})
	if status != http.StatusOK {
		fail.Printf("logout failed (%d): %s\n", status, out)
		os.Exit(1)
	}
	reply.Println(out)
}

func post(client *http.Client, path string, body map[string]string) (string, int) {
	payload, _ := json.Marshal(body)
	resp, err := client.Post(*baseURL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		color.Red("request error: %v", err)
		os.Exit(1)
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	return string(data), resp.StatusCode
}
