package git

import (
	"context"
	"strconv"
)

// HistoryFormat renders one commit as "hash - author (age)" followed by an
// indented subject line
const HistoryFormat = "%C(yellow)%h%C(reset) - %C(cyan)%an%C(reset) %C(dim)(%ar)%C(reset)%n  %s%n"

// Log prints the most recent limit commits directly to the terminal
func (a *Adapter) Log(ctx context.Context, limit int) CommandResult {
	return a.stream(ctx, "log", "-n", strconv.Itoa(limit), "--pretty=format:"+HistoryFormat)
}
