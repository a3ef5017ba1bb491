package dashboard

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alan/verpush/internal/github"
)

// service is the slice of the GitHub client the dashboard needs
type service interface {
	ListOpenPRs(ctx context.Context) ([]github.PullRequest, error)
	ListIssues(ctx context.Context) ([]github.Issue, error)
	ListCommits(ctx context.Context, branch string) ([]github.Commit, error)
	ListReviews(ctx context.Context, prNumber int) ([]github.Review, error)
	SubmitReview(ctx context.Context, prNumber int, event, body string) error
	MergePR(ctx context.Context, prNumber int) error
	CommentOnIssue(ctx context.Context, number int, body string) error
	GetIssue(ctx context.Context, number int) (*github.Issue, error)
	EditIssue(ctx context.Context, number int, title, body string) error
	SetIssueState(ctx context.Context, number int, state string) error
	ReactToIssue(ctx context.Context, number int, content string) error
	ReactToComment(ctx context.Context, commentID int64, content string) error
	LatestIssueComment(ctx context.Context, number int) (*github.Comment, error)
}

type panel int

const (
	panelPRs panel = iota
	panelIssues
	panelCommits

	panelCount = 3
)

type uiState int

const (
	stateBrowse uiState = iota
	stateInput
)

type inputKind int

const (
	inputReviewBody inputKind = iota
	inputIssueReply
	inputEditTitle
	inputEditBody
	inputReaction
)

// pendingAction carries the target of a modal input until it is submitted
type pendingAction struct {
	prNumber    int
	event       string
	issueNumber int
	title       string
	lastComment bool
}

var (
	tabStyle        = lipgloss.NewStyle().Faint(true).Padding(0, 2)
	activeTabStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Padding(0, 2)
	headerStyle     = lipgloss.NewStyle().Faint(true).PaddingLeft(2)
	errStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	okStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	dimStyle        = lipgloss.NewStyle().Faint(true)
	helpStyle       = lipgloss.NewStyle().Faint(true).PaddingLeft(2)
	modalStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(1, 3).Width(58)
	reviewHeadStyle = lipgloss.NewStyle().Bold(true).PaddingLeft(2)
)

type prsLoadedMsg struct {
	prs []github.PullRequest
	err error
}

type issuesLoadedMsg struct {
	issues []github.Issue
	err    error
}

type commitsLoadedMsg struct {
	commits []github.Commit
	err     error
}

type reviewsLoadedMsg struct {
	prNumber int
	reviews  []github.Review
	err      error
}

type actionDoneMsg struct {
	status string
	err    error
}

type model struct {
	svc    service
	branch string
	owner  string
	repo   string

	focus     panel
	state     uiState
	inputKind inputKind
	input     textinput.Model
	pending   pendingAction

	prs     []github.PullRequest
	issues  []github.Issue
	commits []github.Commit

	// Per-panel fetch errors. A failed refresh keeps the previous
	// rows of that panel and only records the error here.
	prErr     error
	issueErr  error
	commitErr error

	reviews    []github.Review
	reviewsFor int

	prTable     table.Model
	issueTable  table.Model
	commitTable table.Model

	status string
	width  int
	height int
}

func newTable(columns []table.Column) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(10),
	)
	styles := table.DefaultStyles()
	styles.Selected = styles.Selected.Bold(true).Foreground(lipgloss.Color("205"))
	t.SetStyles(styles)
	return t
}

func newModel(svc service, branch, owner, repo string) model {
	input := textinput.New()
	input.CharLimit = 500

	m := model{
		svc:    svc,
		branch: branch,
		owner:  owner,
		repo:   repo,
		input:  input,
		prTable: newTable([]table.Column{
			{Title: "#", Width: 6},
			{Title: "Title", Width: 50},
			{Title: "Author", Width: 16},
			{Title: "State", Width: 10},
		}),
		issueTable: newTable([]table.Column{
			{Title: "#", Width: 6},
			{Title: "Title", Width: 50},
			{Title: "Author", Width: 16},
			{Title: "State", Width: 10},
		}),
		commitTable: newTable([]table.Column{
			{Title: "SHA", Width: 10},
			{Title: "Message", Width: 50},
			{Title: "Author", Width: 16},
			{Title: "Date", Width: 12},
		}),
	}
	m.prTable.Focus()
	return m
}

func fetchPRs(svc service) tea.Cmd {
	return func() tea.Msg {
		prs, err := svc.ListOpenPRs(context.Background())
		return prsLoadedMsg{prs: prs, err: err}
	}
}

func fetchIssues(svc service) tea.Cmd {
	return func() tea.Msg {
		issues, err := svc.ListIssues(context.Background())
		return issuesLoadedMsg{issues: issues, err: err}
	}
}

func fetchCommits(svc service, branch string) tea.Cmd {
	return func() tea.Msg {
		commits, err := svc.ListCommits(context.Background(), branch)
		return commitsLoadedMsg{commits: commits, err: err}
	}
}

func listReviewsCmd(svc service, prNumber int) tea.Cmd {
	return func() tea.Msg {
		reviews, err := svc.ListReviews(context.Background(), prNumber)
		return reviewsLoadedMsg{prNumber: prNumber, reviews: reviews, err: err}
	}
}

func submitReviewCmd(svc service, prNumber int, event, body string) tea.Cmd {
	return func() tea.Msg {
		if err := svc.SubmitReview(context.Background(), prNumber, event, body); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: fmt.Sprintf("%s sent for PR #%d", event, prNumber)}
	}
}

func mergeCmd(svc service, prNumber int) tea.Cmd {
	return func() tea.Msg {
		if err := svc.MergePR(context.Background(), prNumber); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: fmt.Sprintf("Merged PR #%d", prNumber)}
	}
}

func commentCmd(svc service, number int, body string) tea.Cmd {
	return func() tea.Msg {
		if err := svc.CommentOnIssue(context.Background(), number, body); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: fmt.Sprintf("Comment added to issue #%d", number)}
	}
}

func editCmd(svc service, number int, title, body string) tea.Cmd {
	return func() tea.Msg {
		if err := svc.EditIssue(context.Background(), number, title, body); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: fmt.Sprintf("Issue #%d updated", number)}
	}
}

// toggleStateCmd only patches the issue when it is not already in the
// requested state
func toggleStateCmd(svc service, number int, target string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		issue, err := svc.GetIssue(ctx, number)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		if issue.State == target {
			return actionDoneMsg{status: fmt.Sprintf("Issue #%d is already %s", number, target)}
		}
		if err := svc.SetIssueState(ctx, number, target); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: fmt.Sprintf("Issue #%d is now %s", number, target)}
	}
}

func reactIssueCmd(svc service, number int, content string) tea.Cmd {
	return func() tea.Msg {
		if err := svc.ReactToIssue(context.Background(), number, content); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: fmt.Sprintf("Reacted %s to issue #%d", content, number)}
	}
}

func reactLastCommentCmd(svc service, number int, content string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		comment, err := svc.LatestIssueComment(ctx, number)
		if err != nil {
			return actionDoneMsg{err: err}
		}
		if comment == nil {
			return actionDoneMsg{err: fmt.Errorf("issue #%d has no comments to react to", number)}
		}
		if err := svc.ReactToComment(ctx, comment.ID, content); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: fmt.Sprintf("Reacted %s to the latest comment on issue #%d", content, number)}
	}
}

func (m model) refresh() tea.Cmd {
	return tea.Batch(
		fetchPRs(m.svc),
		fetchIssues(m.svc),
		fetchCommits(m.svc, m.branch),
	)
}

func (m model) Init() tea.Cmd {
	return m.refresh()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max < 1 {
		return ""
	}
	return string(runes[:max-1]) + "…"
}

func (m *model) rebuildPRRows() {
	rows := make([]table.Row, len(m.prs))
	for i, pr := range m.prs {
		state := pr.State
		if pr.Draft {
			state = "draft"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", pr.Number),
			truncate(pr.Title, 48),
			pr.Author,
			state,
		}
	}
	m.prTable.SetRows(rows)
}

func (m *model) rebuildIssueRows() {
	rows := make([]table.Row, len(m.issues))
	for i, issue := range m.issues {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", issue.Number),
			truncate(issue.Title, 48),
			issue.Author,
			issue.State,
		}
	}
	m.issueTable.SetRows(rows)
}

func (m *model) rebuildCommitRows() {
	rows := make([]table.Row, len(m.commits))
	for i, commit := range m.commits {
		rows[i] = table.Row{
			commit.SHA,
			truncate(commit.Message, 48),
			commit.Author,
			commit.Date.Format("2006-01-02"),
		}
	}
	m.commitTable.SetRows(rows)
}

func (m *model) selectedPR() *github.PullRequest {
	idx := m.prTable.Cursor()
	if idx < 0 || idx >= len(m.prs) {
		return nil
	}
	return &m.prs[idx]
}

func (m *model) selectedIssue() *github.Issue {
	idx := m.issueTable.Cursor()
	if idx < 0 || idx >= len(m.issues) {
		return nil
	}
	return &m.issues[idx]
}

func (m *model) setTableSizes() {
	height := m.height - 8
	if height < 3 {
		height = 3
	}
	for _, t := range []*table.Model{&m.prTable, &m.issueTable, &m.commitTable} {
		t.SetHeight(height)
		t.SetWidth(m.width)
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.setTableSizes()
		return m, nil

	case prsLoadedMsg:
		if msg.err != nil {
			m.prErr = msg.err
			return m, nil
		}
		m.prErr = nil
		m.prs = msg.prs
		m.rebuildPRRows()
		return m, nil

	case issuesLoadedMsg:
		if msg.err != nil {
			m.issueErr = msg.err
			return m, nil
		}
		m.issueErr = nil
		m.issues = msg.issues
		m.rebuildIssueRows()
		return m, nil

	case commitsLoadedMsg:
		if msg.err != nil {
			m.commitErr = msg.err
			return m, nil
		}
		m.commitErr = nil
		m.commits = msg.commits
		m.rebuildCommitRows()
		return m, nil

	case reviewsLoadedMsg:
		if msg.err != nil {
			m.status = errStyle.Render(msg.err.Error())
			return m, nil
		}
		m.reviews = msg.reviews
		m.reviewsFor = msg.prNumber
		return m, nil

	case actionDoneMsg:
		if msg.err != nil {
			m.status = errStyle.Render(msg.err.Error())
		} else {
			m.status = okStyle.Render(msg.status)
		}
		// Whatever the outcome, the lists may be stale now
		return m, m.refresh()
	}

	if m.state == stateInput {
		return m.updateInput(msg)
	}
	return m.updateBrowse(msg)
}

func (m model) openInput(kind inputKind, placeholder, value string) (tea.Model, tea.Cmd) {
	m.state = stateInput
	m.inputKind = kind
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.input.Focus()
	return m, textinput.Blink
}

func (m model) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocusedTable(msg)
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		m.focus = (m.focus + 1) % panelCount
		m.prTable.Blur()
		m.issueTable.Blur()
		m.commitTable.Blur()
		switch m.focus {
		case panelPRs:
			m.prTable.Focus()
		case panelIssues:
			m.issueTable.Focus()
		case panelCommits:
			m.commitTable.Focus()
		}
		return m, nil
	case "r":
		m.status = dimStyle.Render("Refreshing…")
		return m, m.refresh()
	}

	switch m.focus {
	case panelPRs:
		return m.updatePRKeys(keyMsg)
	case panelIssues:
		return m.updateIssueKeys(keyMsg)
	}
	return m.updateFocusedTable(msg)
}

func (m model) updatePRKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pr := m.selectedPR()
	if pr == nil {
		return m.updateFocusedTable(msg)
	}

	switch msg.String() {
	case "a":
		return m, submitReviewCmd(m.svc, pr.Number, github.ReviewApprove, "")
	case "x":
		m.pending = pendingAction{prNumber: pr.Number, event: github.ReviewRequestChanges}
		return m.openInput(inputReviewBody, "What should change?", "")
	case "c":
		m.pending = pendingAction{prNumber: pr.Number, event: github.ReviewComment}
		return m.openInput(inputReviewBody, "Review comment", "")
	case "m":
		return m, mergeCmd(m.svc, pr.Number)
	case "v":
		return m, listReviewsCmd(m.svc, pr.Number)
	}
	return m.updateFocusedTable(msg)
}

func (m model) updateIssueKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	issue := m.selectedIssue()
	if issue == nil {
		return m.updateFocusedTable(msg)
	}

	switch msg.String() {
	case "c":
		m.pending = pendingAction{issueNumber: issue.Number}
		return m.openInput(inputIssueReply, "Reply", "")
	case "e":
		m.pending = pendingAction{issueNumber: issue.Number}
		return m.openInput(inputEditTitle, "Title", issue.Title)
	case "d":
		return m, toggleStateCmd(m.svc, issue.Number, github.IssueStateClosed)
	case "o":
		return m, toggleStateCmd(m.svc, issue.Number, github.IssueStateOpen)
	case "g":
		m.pending = pendingAction{issueNumber: issue.Number}
		return m.openInput(inputReaction, "+1, heart, laugh, …", "")
	case "G":
		m.pending = pendingAction{issueNumber: issue.Number, lastComment: true}
		return m.openInput(inputReaction, "+1, heart, laugh, …", "")
	}
	return m.updateFocusedTable(msg)
}

func (m model) updateFocusedTable(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case panelPRs:
		m.prTable, cmd = m.prTable.Update(msg)
	case panelIssues:
		m.issueTable, cmd = m.issueTable.Update(msg)
	case panelCommits:
		m.commitTable, cmd = m.commitTable.Update(msg)
	}
	return m, cmd
}

func (m model) closeInput() model {
	m.state = stateBrowse
	m.input.Reset()
	m.input.Blur()
	return m
}

func (m model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m.closeInput(), nil
		case "enter":
			return m.submitInput()
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) submitInput() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())

	switch m.inputKind {
	case inputReviewBody:
		if value == "" {
			return m, nil
		}
		pending := m.pending
		return m.closeInput(), submitReviewCmd(m.svc, pending.prNumber, pending.event, value)

	case inputIssueReply:
		if value == "" {
			return m, nil
		}
		pending := m.pending
		return m.closeInput(), commentCmd(m.svc, pending.issueNumber, value)

	case inputEditTitle:
		if value == "" {
			return m, nil
		}
		// Title collected, now ask for the body
		m.pending.title = value
		body := ""
		if issue := m.selectedIssue(); issue != nil {
			body = issue.Body
		}
		return m.openInput(inputEditBody, "Body", body)

	case inputEditBody:
		pending := m.pending
		return m.closeInput(), editCmd(m.svc, pending.issueNumber, pending.title, value)

	case inputReaction:
		if value == "" {
			return m, nil
		}
		pending := m.pending
		next := m.closeInput()
		if pending.lastComment {
			return next, reactLastCommentCmd(m.svc, pending.issueNumber, value)
		}
		return next, reactIssueCmd(m.svc, pending.issueNumber, value)
	}

	return m.closeInput(), nil
}

var panelTitles = [panelCount]string{"Pull Requests", "Issues", "Commits"}

func (m model) View() string {
	if m.width == 0 {
		return ""
	}

	var tabs []string
	for i, title := range panelTitles {
		label := title + " (" + strconv.Itoa(m.panelLen(panel(i))) + ")"
		if panel(i) == m.focus {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	info := headerStyle.Render(fmt.Sprintf("%s/%s on %s", m.owner, m.repo, m.branch))

	var body string
	switch m.focus {
	case panelPRs:
		body = m.prTable.View()
	case panelIssues:
		body = m.issueTable.View()
	case panelCommits:
		body = m.commitTable.View()
	}

	sections := []string{header, info, body}

	if err := m.panelErr(); err != nil {
		sections = append(sections, errStyle.Render(fmt.Sprintf("  Fetch failed, showing last good data: %v", err)))
	}
	if m.focus == panelPRs && m.reviewsFor != 0 {
		sections = append(sections, m.renderReviews())
	}
	if m.status != "" {
		sections = append(sections, "  "+m.status)
	}
	sections = append(sections, m.renderHelp())

	base := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if m.state == stateInput {
		return m.renderInputOver()
	}
	return base
}

func (m model) panelLen(p panel) int {
	switch p {
	case panelPRs:
		return len(m.prs)
	case panelIssues:
		return len(m.issues)
	default:
		return len(m.commits)
	}
}

func (m model) panelErr() error {
	switch m.focus {
	case panelPRs:
		return m.prErr
	case panelIssues:
		return m.issueErr
	default:
		return m.commitErr
	}
}

func (m model) renderReviews() string {
	var b strings.Builder
	b.WriteString(reviewHeadStyle.Render(fmt.Sprintf("Reviews for PR #%d", m.reviewsFor)) + "\n")
	if len(m.reviews) == 0 {
		b.WriteString(dimStyle.Render("  No reviews."))
		return b.String()
	}
	for _, review := range m.reviews {
		line := fmt.Sprintf("  %s: %s", review.Author, review.State)
		if review.Body != "" {
			line += " " + dimStyle.Render(truncate(review.Body, 60))
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m model) renderHelp() string {
	var text string
	switch {
	case m.state == stateInput:
		text = "Enter submit   Esc cancel"
	case m.focus == panelPRs:
		text = "tab panel   a approve   x request changes   c comment   m merge   v reviews   r refresh   q quit"
	case m.focus == panelIssues:
		text = "tab panel   c reply   e edit   d close   o reopen   g react   G react last comment   r refresh   q quit"
	default:
		text = "tab panel   r refresh   q quit"
	}
	return helpStyle.Render(text)
}

func (m model) inputTitle() string {
	switch m.inputKind {
	case inputReviewBody:
		if m.pending.event == github.ReviewRequestChanges {
			return "Request Changes"
		}
		return "Review Comment"
	case inputIssueReply:
		return fmt.Sprintf("Reply to Issue #%d", m.pending.issueNumber)
	case inputEditTitle:
		return fmt.Sprintf("Edit Issue #%d: Title", m.pending.issueNumber)
	case inputEditBody:
		return fmt.Sprintf("Edit Issue #%d: Body", m.pending.issueNumber)
	case inputReaction:
		return "Reaction"
	}
	return ""
}

func (m model) renderInputOver() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(m.inputTitle()) + "\n\n")
	b.WriteString(m.input.View() + "\n")
	b.WriteString("\n" + dimStyle.Render("Enter to submit · Esc to cancel"))

	modal := modalStyle.Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal,
		lipgloss.WithWhitespaceBackground(lipgloss.Color("0")),
	)
}
