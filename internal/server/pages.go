package server

import (
	"fmt"
	"net/http"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/sw33tLie/vitalis/internal/utils"
	"github.com/sw33tLie/vitalis/pkg/dashboard"
	"github.com/sw33tLie/vitalis/pkg/fast"
	"github.com/sw33tLie/vitalis/pkg/history"
	"github.com/sw33tLie/vitalis/pkg/hospitals"
	"github.com/sw33tLie/vitalis/pkg/i18n"
	"github.com/sw33tLie/vitalis/pkg/report"
	"github.com/sw33tLie/vitalis/pkg/screening"
)

const css = `body{font-family:system-ui,sans-serif;margin:0;background:#f8fafc;color:#0f172a}
main{max-width:40rem;margin:0 auto;padding:1.5rem}
h1{margin:.2rem 0}.subtitle{color:#475569}
.warning{background:#fef3c7;border:1px solid #f59e0b;padding:.75rem;border-radius:.5rem}
.btn{display:inline-block;padding:.6rem 1.2rem;border-radius:.5rem;border:0;background:#2563eb;color:#fff;text-decoration:none;font-size:1rem;cursor:pointer}
.btn-yes{background:#16a34a}.btn-no{background:#dc2626}.btn-muted{background:#64748b}
.row{display:flex;gap:.75rem;flex-wrap:wrap;margin:1rem 0}
.badge{font-weight:600;color:#2563eb}.progress{color:#475569}
.risk{padding:1rem;border-radius:.5rem;margin:1rem 0}
.risk-HIGH{background:#fee2e2}.risk-MEDIUM{background:#fef9c3}.risk-LOW{background:#dcfce7}
table{width:100%;border-collapse:collapse}td,th{padding:.4rem;border-bottom:1px solid #e2e8f0;text-align:left}
.card{background:#fff;border:1px solid #e2e8f0;border-radius:.5rem;padding:1rem;margin:.75rem 0}
.lang a{margin-right:.5rem}`

// voiceScript shows the voice section only when the browser can recognize
// speech, and posts the running transcript with the question step until the
// server moves on. After a match it drops the results it already sent and
// stops posting.
const voiceScript = `(function(){
var R=window.SpeechRecognition||window.webkitSpeechRecognition;
var box=document.getElementById('voice');if(!R||!box)return;
box.hidden=false;
var btn=document.getElementById('voice-btn'),st=document.getElementById('voice-status');
btn.onclick=function(){
var rec=new R(),done=false,from=0;rec.lang=box.dataset.locale;rec.continuous=true;rec.interimResults=true;
rec.onresult=function(e){if(done)return;var t='';for(var i=from;i<e.results.length;i++){t+=e.results[i][0].transcript+' ';}
var n=e.results.length,f=new URLSearchParams();f.set('transcript',t.trim());f.set('step',box.dataset.step);
fetch('/screening/voice',{method:'POST',body:f}).then(function(r){if(r.redirected&&!done){done=true;from=n;rec.abort();window.location=r.url;}});};
rec.onend=function(){st.textContent='';};
rec.start();st.textContent=box.dataset.listening;};
})();`

func render(w http.ResponseWriter, n g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := n.Render(w); err != nil {
		utils.Log.Debugf("Could not render page: %v", err)
	}
}

// Page layout component
func pageLayout(lang i18n.Language, title string, content ...g.Node) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(g.Attr("lang", string(lang)),
			Head(
				Meta(Charset("UTF-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(title+" - VITALIS")),
				StyleEl(g.Raw(css)),
			),
			Body(
				Main(
					Div(Class("lang"),
						A(Href("?lang=en"), g.Text("English")),
						A(Href("?lang=hi"), g.Text("हिंदी")),
					),
					g.Group(content),
				),
			),
		),
	})
}

func homePage(lang i18n.Language) g.Node {
	return pageLayout(lang, "FAST",
		Header(
			H1(g.Text("VITALIS FAST")),
			P(Class("subtitle"), g.Text(i18n.T(lang, "app.subtitle"))),
			P(g.Text(i18n.T(lang, "app.tagline"))),
		),
		Div(Class("row"),
			Span(Class("card"), g.Text(i18n.T(lang, "feature.fast"))),
			Span(Class("card"), g.Text(i18n.T(lang, "feature.voice"))),
			Span(Class("card"), g.Text(i18n.T(lang, "feature.time"))),
		),
		Div(Class("row"),
			Form(Method("POST"), Action("/screening"),
				Button(Type("submit"), Class("btn"), ID("start"), g.Text(i18n.T(lang, "app.start"))),
			),
			A(Href("/dashboard"), Class("btn btn-muted"), g.Text(i18n.T(lang, "app.dashboard"))),
		),
		P(Class("warning"), g.Text(i18n.T(lang, "app.warning"))),
	)
}

type screeningView struct {
	Lang     i18n.Language
	Question screening.Question
	Step     int
	Total    int
}

func answerButton(lang i18n.Language, a fast.Answer, key, class string) g.Node {
	return Form(Method("POST"), Action("/screening/answer"),
		Input(Type("hidden"), Name("answer"), Value(string(a))),
		Button(Type("submit"), Class("btn "+class), ID("answer-"+string(a)), g.Text(i18n.T(lang, key))),
	)
}

func screeningPage(v screeningView) g.Node {
	lang := v.Lang
	return pageLayout(lang, i18n.T(lang, "screen.title"),
		H1(g.Text(i18n.T(lang, "screen.title"))),
		P(Class("progress"), ID("progress"), g.Textf("%d / %d", v.Step, v.Total)),
		Section(Class("card"),
			P(Class("badge"), g.Text(v.Question.Badge)),
			H2(ID("question"), g.Text(v.Question.Text(lang))),
			Div(Class("row"),
				answerButton(lang, fast.Yes, "screen.yes", "btn-yes"),
				answerButton(lang, fast.No, "screen.no", "btn-no"),
			),
		),
		Section(ID("voice"), g.Attr("hidden"),
			g.Attr("data-locale", lang.Locale()),
			g.Attr("data-step", fmt.Sprint(v.Step)),
			g.Attr("data-listening", i18n.T(lang, "screen.listening")),
			Button(Type("button"), Class("btn"), ID("voice-btn"), g.Text("🎤 "+i18n.T(lang, "screen.speak"))),
			Span(ID("voice-status")),
		),
		Form(Method("POST"), Action("/screening/cancel"),
			Button(Type("submit"), Class("btn btn-muted"), ID("cancel"), g.Text(i18n.T(lang, "screen.cancel"))),
		),
		Script(g.Raw(voiceScript)),
	)
}

func answerText(lang i18n.Language, a fast.Answer) string {
	switch a {
	case fast.Yes:
		return i18n.T(lang, "screen.yes")
	case fast.No:
		return i18n.T(lang, "screen.no")
	}
	return "-"
}

func resultPage(lang i18n.Language, rec history.Record) g.Node {
	tier := rec.Risk()
	key := "risk." + tier.String()

	var rows []g.Node
	for _, q := range screening.Questions {
		rows = append(rows, Tr(
			Td(g.Text(q.Label(lang))),
			Td(g.Text(answerText(lang, rec.Answers.Get(q.Key)))),
		))
	}

	return pageLayout(lang, i18n.T(lang, "result.title"),
		H1(g.Text(i18n.T(lang, "result.title"))),
		Section(Class("risk risk-"+tier.String()), ID("risk"), g.Attr("data-tier", tier.String()),
			H2(g.Text(i18n.T(lang, key+".title"))),
			P(g.Text(i18n.T(lang, key+".desc"))),
			P(Strong(g.Text(i18n.T(lang, key+".action")))),
		),
		P(ID("summary"), g.Textf("%s: %ds · %s: %d/%d",
			i18n.T(lang, "result.duration"), rec.DurationSeconds,
			i18n.T(lang, "result.symptoms"), rec.Answers.YesCount(), len(fast.Keys))),
		H2(g.Text(i18n.T(lang, "result.responses"))),
		Table(ID("responses"), TBody(g.Group(rows))),
		g.If(tier == fast.High,
			Div(Class("row"), ID("emergency"),
				A(Href("/hospitals"), Class("btn btn-no"), g.Text(i18n.T(lang, "result.find"))),
				A(Href(hospitals.EmergencyTelURL()), Class("btn btn-no"), g.Text(i18n.T(lang, "result.call108"))),
			),
		),
		Div(Class("row"),
			A(Href("/report.pdf"), Class("btn"), ID("download"), g.Text(i18n.T(lang, "result.download"))),
			Button(Type("button"), Class("btn btn-muted"), ID("share"),
				g.Attr("data-text", report.ShareText(tier)),
				g.Attr("onclick", "navigator.share?navigator.share({title:'VITALIS',text:this.dataset.text}):navigator.clipboard.writeText(this.dataset.text)"),
				g.Text(i18n.T(lang, "result.share"))),
			Form(Method("POST"), Action("/screening"),
				Button(Type("submit"), Class("btn"), g.Text(i18n.T(lang, "result.new"))),
			),
		),
		P(Class("subtitle"), g.Text(i18n.T(lang, "result.disclaimer"))),
	)
}

func statCard(id, label string, value string) g.Node {
	return Div(Class("card"), ID(id),
		P(Class("subtitle"), g.Text(label)),
		H2(g.Text(value)),
	)
}

func dashboardPage(lang i18n.Language, stats dashboard.Stats) g.Node {
	var rows []g.Node
	for _, rec := range stats.Recent {
		rows = append(rows, Tr(
			Td(g.Text(rec.Timestamp.Local().Format("2006-01-02 15:04"))),
			Td(g.Text(rec.Risk().String())),
			Td(g.Textf("%ds", rec.DurationSeconds)),
			Td(g.Text(string(rec.Language))),
		))
	}

	return pageLayout(lang, i18n.T(lang, "dash.title"),
		H1(g.Text(i18n.T(lang, "dash.title"))),
		Div(Class("row"),
			statCard("total", i18n.T(lang, "dash.total"), fmt.Sprint(stats.Total)),
			statCard("avg", i18n.T(lang, "dash.avg"), fmt.Sprintf("%ds", stats.AvgDuration)),
		),
		Div(Class("row"),
			statCard("high", i18n.T(lang, "dash.high"), fmt.Sprint(stats.High)),
			statCard("medium", i18n.T(lang, "dash.medium"), fmt.Sprint(stats.Medium)),
			statCard("low", i18n.T(lang, "dash.low"), fmt.Sprint(stats.Low)),
		),
		H2(g.Text(i18n.T(lang, "dash.recent"))),
		Table(ID("recent"), TBody(g.Group(rows))),
		Div(Class("row"),
			Form(Method("POST"), Action("/dashboard/clear"),
				g.Attr("onsubmit", fmt.Sprintf("return confirm(%q)", i18n.T(lang, "dash.clear.confirm"))),
				Button(Type("submit"), Class("btn btn-no"), ID("clear"), g.Text(i18n.T(lang, "dash.clear"))),
			),
			A(Href("/"), Class("btn btn-muted"), g.Text(i18n.T(lang, "dash.home"))),
		),
	)
}

func hospitalsPage(lang i18n.Language, loc hospitals.Location, list []hospitals.Hospital) g.Node {
	var cards []g.Node
	for _, h := range list {
		cards = append(cards, Div(Class("card hospital"),
			H2(g.Text(h.Name)),
			P(g.Text(h.Address)),
			P(Class("subtitle"), g.Text(h.Distance),
				g.If(h.Emergency, Span(Class("badge"), g.Text(" · "+i18n.T(lang, "map.emergency")))),
			),
			Div(Class("row"),
				A(Href(hospitals.DirectionsURL(loc, h)), Class("btn"), g.Attr("target", "_blank"), g.Text(i18n.T(lang, "map.directions"))),
				A(Href(hospitals.TelURL(h.Phone)), Class("btn btn-yes"), g.Text(i18n.T(lang, "map.call"))),
			),
		))
	}

	return pageLayout(lang, i18n.T(lang, "map.title"),
		H1(g.Text(i18n.T(lang, "map.title"))),
		P(Class("subtitle"), g.Text(i18n.T(lang, "map.within"))),
		Div(ID("hospitals"), g.Group(cards)),
		Div(Class("warning"),
			Strong(g.Text(i18n.T(lang, "map.critical"))),
			A(Href(hospitals.EmergencyTelURL()), Class("btn btn-no"), ID("call108"), g.Text(i18n.T(lang, "map.call108"))),
		),
		Div(Class("row"),
			A(Href("/result"), Class("btn btn-muted"), g.Text(i18n.T(lang, "map.back"))),
		),
	)
}
