package journal

import (
	"bytes"
	"text/template"

	"github.com/rustyeddy/tradecalc/internal/num"
)

// Stats summarises a set of closed trades. A trade with zero P&L counts
// as neither a win nor a loss.
type Stats struct {
	Trades int
	Wins   int
	Losses int

	WinRate      float64 // percent
	GrossProfit  float64
	GrossLoss    float64 // positive
	ProfitFactor float64 // 0 when there are no losses
	NetPL        float64
	AverageWin   float64
	AverageLoss  float64 // positive

	LongestWinStreak  int
	LongestLossStreak int
}

// Summarize computes Stats over trades in the order given.
func Summarize(trades []TradeRecord) Stats {
	var s Stats
	var winRun, lossRun int

	for _, t := range trades {
		s.Trades++
		s.NetPL += t.ProfitLoss

		switch {
		case t.ProfitLoss > 0:
			s.Wins++
			s.GrossProfit += t.ProfitLoss
			winRun++
			lossRun = 0
		case t.ProfitLoss < 0:
			s.Losses++
			s.GrossLoss += -t.ProfitLoss
			lossRun++
			winRun = 0
		default:
			winRun, lossRun = 0, 0
		}
		s.LongestWinStreak = max(s.LongestWinStreak, winRun)
		s.LongestLossStreak = max(s.LongestLossStreak, lossRun)
	}

	if s.Trades > 0 {
		s.WinRate = float64(s.Wins) / float64(s.Trades) * 100
	}
	if s.GrossLoss > 0 {
		s.ProfitFactor = s.GrossProfit / s.GrossLoss
	}
	if s.Wins > 0 {
		s.AverageWin = s.GrossProfit / float64(s.Wins)
	}
	if s.Losses > 0 {
		s.AverageLoss = s.GrossLoss / float64(s.Losses)
	}

	s.NetPL = num.Money(s.NetPL)
	s.GrossProfit = num.Money(s.GrossProfit)
	s.GrossLoss = num.Money(s.GrossLoss)
	return s
}

var summaryOrgFuncs = template.FuncMap{
	"money": func(x float64) string { return num.Fixed(x, 2) },
}

const SummaryOrgTemplate = `* JOURNAL SUMMARY{{if .Title}}: {{.Title}}{{end}}
:PROPERTIES:
:TRADES:      {{.Trades}}
:WINS:        {{.Wins}}
:LOSSES:      {{.Losses}}
:WIN_RATE:    {{printf "%.2f" .WinRate}}
:NET_PL:      {{money .NetPL}}
:PROFIT_FAC:  {{if ne .ProfitFactor 0.0}}{{printf "%.2f" .ProfitFactor}}{{else}}(no losses){{end}}
:END:

** Performance Summary
- Net P/L:          *{{money .NetPL}}*
- Gross Profit:     *{{money .GrossProfit}}*
- Gross Loss:       *{{money .GrossLoss}}*
- Win Rate:         *{{printf "%.2f" .WinRate}}%*
- Average Win:      *{{money .AverageWin}}*
- Average Loss:     *{{money .AverageLoss}}*
- Win Streak:       *{{.LongestWinStreak}}*
- Loss Streak:      *{{.LongestLossStreak}}*
`

var summaryOrg = template.Must(template.New("summary").Funcs(summaryOrgFuncs).Parse(SummaryOrgTemplate))

// FormatSummaryOrg renders s as an Org-mode heading.
func FormatSummaryOrg(title string, s Stats) (string, error) {
	buf := new(bytes.Buffer)
	err := summaryOrg.Execute(buf, struct {
		Stats
		Title string
	}{s, title})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
