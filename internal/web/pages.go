package web

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"maragu.dev/gomponents"
	data "maragu.dev/gomponents-datastar"
	"maragu.dev/gomponents/html"

	"github.com/idilsaglam/benchkit/internal/calc"
	"github.com/idilsaglam/benchkit/internal/model"
	"github.com/idilsaglam/benchkit/internal/nav"
	"github.com/idilsaglam/benchkit/internal/theme"
)

type navLink struct {
	Label string
	Href  string
}

var navLinks = []navLink{
	{Label: "Home", Href: "/"},
	{Label: "Tools", Href: "/tools"},
	{Label: "Checklist", Href: "/checklist"},
}

// dismissScript closes the drawer on any click outside the menu control and
// the links panel.
const dismissScript = `document.addEventListener('click', function(e){
  var t = e.target; if (!(t instanceof Element)) { return; }
  var box = document.getElementById('menu-check');
  if (!box || !box.checked) { return; }
  if (t.closest('#menu-toggle') || t.closest('#nav-links')) { return; }
  box.checked = false; box.dispatchEvent(new Event('change', {bubbles: true}));
});`

func layout(title string, v theme.View, body ...gomponents.Node) gomponents.Node {
	var drawer nav.Drawer
	toggleClass, linksClass := drawer.Classes()

	links := make([]gomponents.Node, 0, len(navLinks))
	for _, l := range navLinks {
		links = append(links, html.A(html.Href(l.Href), gomponents.Text(l.Label)))
	}

	return html.Doctype(html.HTML(
		html.Lang("en"),
		gomponents.Attr("data-theme", string(v.Effective)),
		html.Head(
			html.Meta(html.Charset("utf-8")),
			html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
			html.Meta(html.Name("color-scheme"), html.Content("light dark")),
			html.TitleEl(gomponents.Text(title+" | benchkit")),
			html.Link(html.Rel("icon"), html.Href("data:,")),
			html.StyleEl(gomponents.Raw(stylesheet)),
			html.Script(
				html.Type("module"),
				html.Src("https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.7/bundles/datastar.js"),
			),
		),
		html.Body(
			html.Header(
				html.Class("site-header"),
				data.Signals(map[string]any{"menu": drawer.Open()}),
				html.A(html.Class("brand"), html.Href("/"), gomponents.Text("benchkit")),
				html.Label(
					html.ID("menu-toggle"),
					html.Class(toggleClass),
					html.Input(html.ID("menu-check"), html.Type("checkbox"), data.Bind("menu")),
					html.Span(gomponents.Text("☰ Menu")),
				),
				html.Nav(html.ID("nav-links"), html.Class(linksClass), data.Show("$menu"), gomponents.Group(links)),
				themeToggle(v),
			),
			html.Main(html.Class("content"), gomponents.Group(body)),
			html.Script(gomponents.Raw(dismissScript)),
		),
	))
}

func themeToggle(v theme.View) gomponents.Node {
	return html.Form(
		html.Method("post"),
		html.Action("/theme"),
		html.Class("theme-form"),
		html.Button(
			html.ID("theme-toggle"),
			html.Type("submit"),
			html.Title(v.Title),
			gomponents.Attr("aria-label", v.Title),
			gomponents.Raw(v.Icon.SVG),
		),
	)
}

func homePage(v theme.View, calcs []calc.Calculator) gomponents.Node {
	cards := make([]gomponents.Node, 0, len(calcs)+1)
	for _, c := range calcs {
		cards = append(cards, html.A(
			html.Class("card"),
			html.Href("/tools/"+c.ID),
			html.H3(gomponents.Text(c.Title)),
			html.P(html.Class("muted"), gomponents.Text(c.Summary)),
		))
	}
	cards = append(cards, html.A(
		html.Class("card"),
		html.Href("/checklist"),
		html.H3(gomponents.Text("Design Review Checklist")),
		html.P(html.Class("muted"), gomponents.Text("Track the pre-fabrication review in this browser.")),
	))
	return layout("Home", v,
		html.H1(gomponents.Text("Electronics bench tools")),
		html.Div(html.Class("grid"), gomponents.Group(cards)),
	)
}

func toolsPage(v theme.View, cards []gomponents.Node) gomponents.Node {
	return layout("Tools", v,
		html.Div(
			data.Signals(map[string]any{"q": ""}),
			html.H1(gomponents.Text("Calculators")),
			html.Input(
				html.Class("filter"),
				html.Type("search"),
				html.Placeholder("Filter tools"),
				data.Bind("q"),
			),
			html.Div(html.Class("grid"), gomponents.Group(cards)),
		),
	)
}

func toolPage(v theme.View, c calc.Calculator, card gomponents.Node) gomponents.Node {
	return layout(c.Title, v,
		html.P(html.A(html.Href("/tools"), gomponents.Text("← All tools"))),
		card,
	)
}

// calcCard renders one calculator form with its results. On the tools page
// every field name is prefixed with the calculator id so forms don't collide.
// The form submits as a plain GET; with scripts on, each field carries a
// signal under the calculator id and every input event fetches the live
// results instead.
func calcCard(c calc.Calculator, in map[string]string, outs []calc.Output, filtered bool) gomponents.Node {
	prefix, action := "", "/tools/"+c.ID
	if filtered {
		prefix, action = c.ID+".", "/tools#"+c.ID
	}

	fields := make([]gomponents.Node, 0, len(c.Fields))
	for _, f := range c.Fields {
		fields = append(fields, fieldInput(c.ID, f, prefix, in[f.ID]))
	}

	return html.Section(
		html.ID(c.ID),
		html.Class("card tool"),
		data.Signals(map[string]any{c.ID: in}),
		gomponents.If(filtered, data.Show(containsExpr(c.Title+" "+c.Summary))),
		html.H2(html.A(html.Href("/tools/"+c.ID), gomponents.Text(c.Title))),
		html.P(html.Class("muted"), gomponents.Text(c.Summary)),
		html.Form(
			html.Method("get"),
			html.Action(action),
			gomponents.Group(fields),
			html.Button(html.Type("submit"), gomponents.Text("Calculate")),
		),
		resultsList(c.ID, outs),
	)
}

// resultsList is the part of a card the live endpoint replaces.
func resultsList(id string, outs []calc.Output) gomponents.Node {
	results := make([]gomponents.Node, 0, 2*len(outs))
	for _, o := range outs {
		results = append(results, html.Dt(gomponents.Text(o.Label)), html.Dd(gomponents.Text(o.Value)))
	}
	return html.Dl(html.ID(id+"-results"), html.Class("results"), gomponents.Group(results))
}

// liveExpr fetches fresh results for calculator id after field changed.
func liveExpr(id, field string) string {
	return "@get('/tools/" + id + "/live?from=" + field + "')"
}

func fieldInput(calcID string, f calc.Field, prefix, value string) gomponents.Node {
	name := prefix + f.ID
	label := f.Label
	if f.Unit != "" {
		label += " (" + f.Unit + ")"
	}
	live := gomponents.Group([]gomponents.Node{
		data.Bind(calcID + "." + f.ID),
		data.On("input", liveExpr(calcID, f.ID)),
	})
	if len(f.Options) > 0 {
		opts := make([]gomponents.Node, 0, len(f.Options))
		for _, o := range f.Options {
			opts = append(opts, html.Option(html.Value(o), gomponents.If(o == value, html.Selected()), gomponents.Text(o)))
		}
		return html.Label(html.Span(gomponents.Text(label)), html.Select(html.Name(name), live, gomponents.Group(opts)))
	}
	return html.Label(
		html.Span(gomponents.Text(label)),
		html.Input(html.Type("text"), gomponents.Attr("inputmode", "decimal"), html.Name(name), html.Value(value), live),
	)
}

func checklistPage(v theme.View, items []model.Item, done, total int) gomponents.Node {
	rows := make([]gomponents.Node, 0, len(items))
	for _, it := range items {
		class := "checklist-item"
		if it.Checked {
			class += " checked-item"
		}
		rows = append(rows, html.Li(
			html.ID(it.ID),
			html.Class(class),
			html.Form(
				html.Method("post"),
				html.Action("/checklist/"+url.PathEscape(it.ID)),
				html.Label(
					html.Input(
						html.Type("checkbox"),
						html.Name("checked"),
						gomponents.If(it.Checked, html.Checked()),
						gomponents.Attr("onchange", "this.form.requestSubmit()"),
					),
					html.Span(gomponents.Text(it.Label)),
				),
				html.Button(html.Class("save"), html.Type("submit"), gomponents.Text("Save")),
			),
		))
	}
	return layout("Checklist", v,
		html.H1(gomponents.Text("Design Review Checklist")),
		html.P(html.Class("muted"), gomponents.Text(fmt.Sprintf("%d of %d checked", done, total))),
		html.Ul(html.Class("checklist"), gomponents.Group(rows)),
	)
}

func notFoundPage(v theme.View, msg string) gomponents.Node {
	return layout("Not found", v,
		html.H1(gomponents.Text("Not found")),
		html.P(gomponents.Text(msg)),
		html.P(html.A(html.Href("/"), gomponents.Text("Back home"))),
	)
}

func containsExpr(value string) string {
	lower := strings.ToLower(value)
	return "$q === '' || " + strconv.Quote(lower) + ".includes($q.toLowerCase())"
}
