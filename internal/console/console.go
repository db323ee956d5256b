// Package console turns typed player input into game commands. It is shared
// by the terminal and window front ends.
package console

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/appengine-ltd/dungeon-crawler/internal/game"
	"github.com/appengine-ltd/dungeon-crawler/internal/parser"
)

const maxMessages = 200

type Outcome struct {
	Quit    bool
	Handled bool
	Result  game.CommandResult
}

type Console struct {
	game   *game.Game
	parser *parser.Parser
	log    logrus.FieldLogger
	now    func() time.Time

	lastEntity string
	clarify    *parser.ClarifyQuestion
	messages   []string
}

func New(g *game.Game, log logrus.FieldLogger) *Console {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Console{
		game:   g,
		parser: parser.New(),
		log:    log,
		now:    time.Now,
	}
}

// Submit parses raw input and runs the resulting command against the game.
// Events the command produces are only queued; the caller drains them with
// game.Update at the end of its frame.
func (c *Console) Submit(raw string) Outcome {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		c.Say("Enter a command.")
		return Outcome{}
	}
	c.clarify = nil

	intent := c.parser.Parse(c.context(), raw)
	if intent.Clarify != nil {
		if len(intent.Clarify.Options) > 0 {
			c.clarify = intent.Clarify
		}
		c.Say(clarifyText(intent.Clarify))
		c.log.WithField("input", raw).Debug("input needs clarification")
		return Outcome{}
	}
	return c.run(intent)
}

// Choose resolves a pending clarification with a 1-based option number.
func (c *Console) Choose(n int) (Outcome, bool) {
	if c.clarify == nil || n < 1 || n > len(c.clarify.Options) {
		return Outcome{}, false
	}
	intent := c.clarify.Options[n-1]
	c.clarify = nil
	return c.run(intent), true
}

func (c *Console) Clarifying() bool {
	return c.clarify != nil
}

func (c *Console) Options() []string {
	if c.clarify == nil {
		return nil
	}
	out := make([]string, 0, len(c.clarify.Options))
	for _, opt := range c.clarify.Options {
		out = append(out, parser.IntentToCommandString(opt))
	}
	return out
}

func (c *Console) Messages() []string {
	return append([]string(nil), c.messages...)
}

// Recent returns at most n of the newest messages, oldest first.
func (c *Console) Recent(n int) []string {
	if n <= 0 {
		return nil
	}
	if len(c.messages) <= n {
		return c.Messages()
	}
	return append([]string(nil), c.messages[len(c.messages)-n:]...)
}

func (c *Console) Say(message string) {
	line := strings.TrimSpace(message)
	if line == "" {
		return
	}
	formatted := fmt.Sprintf("[%s] %s", c.now().Format("15:04:05"), line)
	c.messages = append(c.messages, formatted)
	if len(c.messages) > maxMessages {
		c.messages = append([]string(nil), c.messages[len(c.messages)-maxMessages:]...)
	}
}

func (c *Console) run(intent parser.Intent) Outcome {
	command := parser.IntentToCommandString(intent)
	entry := c.log.WithFields(logrus.Fields{
		"input":   intent.Raw,
		"command": command,
	})
	if intent.Verb == "quit" {
		entry.Info("quit requested")
		return Outcome{Quit: true, Handled: true}
	}

	res := c.game.ExecuteCommand(command)
	if !res.Handled {
		entry.Debug("command not understood")
		c.Say(fmt.Sprintf("I don't understand %q. Type help for commands.", intent.Raw))
		return Outcome{Result: res}
	}
	if len(intent.Args) > 0 {
		c.lastEntity = intent.Args[0]
	}
	entry.WithField("queued", len(res.Queued)).Info("command executed")
	c.Say(res.Message)
	return Outcome{Handled: true, Result: res}
}

func (c *Console) context() parser.ParseContext {
	return parser.ParseContext{
		Inventory:  c.game.HeldNames(),
		Nearby:     c.game.NearbyNames(),
		LastEntity: c.lastEntity,
	}
}

func clarifyText(q *parser.ClarifyQuestion) string {
	var b strings.Builder
	b.WriteString(q.Prompt)
	for i, opt := range q.Options {
		fmt.Fprintf(&b, " [%d] %s", i+1, parser.IntentToCommandString(opt))
	}
	return b.String()
}
