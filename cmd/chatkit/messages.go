package main

import (
	"bufio"
	"chat-kit/domain/chat"
	"encoding/json"
	"io"
	"strconv"
	"strings"
)

const maxTextPreview = 48

type messageResult struct {
	Line    int           `json:"line"`
	Status  Status        `json:"status"`
	Kind    string        `json:"kind,omitempty"`
	Error   string        `json:"error,omitempty"`
	Message *chat.Message `json:"message,omitempty"`
}

// checkMessages decodes one wire message per non-blank line.
// It returns the number of invalid lines.
func checkMessages(in io.Reader, report *Report) (int, error) {
	report.SetHeader("Line", "Sender", "Text")
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	invalid, line := 0, 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		var msg chat.Message
		result := messageResult{Line: line, Status: StatusAccepted, Message: &msg}
		sender, text := "", ""
		if err := json.Unmarshal([]byte(raw), &msg); err != nil {
			invalid++
			result = messageResult{Line: line, Status: StatusRejected, Kind: kindOf(err), Error: err.Error()}
			text = err.Error()
		} else {
			sender, text = msg.Sender().String(), preview(msg.Text())
		}
		if err := report.Add(result.Status, result, strconv.Itoa(line), sender, text); err != nil {
			return invalid, err
		}
	}
	if err := scanner.Err(); err != nil {
		return invalid, err
	}
	report.Render()
	return invalid, nil
}

func preview(text string) string {
	text = strings.ReplaceAll(text, "\n", " ")
	runes := []rune(text)
	if len(runes) <= maxTextPreview {
		return text
	}
	return string(runes[:maxTextPreview-1]) + "…"
}
