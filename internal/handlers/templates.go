package handlers

// dashboardTemplate renders both dashboard states. Tabs are radio inputs so the
// page works without scripts; the "Perbarui Filter" button is the no-script
// way back to the idle state.
const dashboardTemplate = `<!DOCTYPE html>
<html lang="id">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2rem auto; max-width: 1100px; color: #262730; }
h1 { font-size: 1.9rem; }
.filters { display: flex; gap: 2rem; flex-wrap: wrap; }
.filters label { display: block; font-weight: 600; margin-bottom: .4rem; }
.filters select { min-width: 320px; min-height: 9rem; }
.actions { margin-top: 1rem; display: flex; gap: .6rem; }
button { padding: .45rem 1rem; border-radius: .4rem; border: 1px solid #d0d0d8; background: #fff; cursor: pointer; }
button.primary { background: #ff4b4b; border-color: #ff4b4b; color: #fff; }
.notice { padding: .75rem 1rem; border-radius: .4rem; margin: 1rem 0; }
.notice.info { background: #e8f0fe; color: #1c4f9c; }
.notice.warning { background: #fff8e1; color: #8a6d00; }
.notice.error { background: #fdecea; color: #a4262c; }
.tabs input[type=radio] { display: none; }
.tabs > label { display: inline-block; padding: .5rem 1rem; border-bottom: 2px solid transparent; cursor: pointer; }
.tabs input[type=radio]:checked + label { border-bottom-color: #ff4b4b; color: #ff4b4b; }
.tab-panel { display: none; padding-top: 1rem; }
{{range $i, $tab := .Tabs}}#tab-{{$i}}:checked ~ #panel-{{$i}} { display: block; }
{{end}}table { border-collapse: collapse; width: 100%; font-size: .9rem; }
th, td { border: 1px solid #e6e6ea; padding: .35rem .6rem; text-align: left; }
td.num { text-align: right; }
img.wordcloud { max-width: 100%; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<h2>Pilih Filter untuk Membandingkan Data</h2>
<form method="post" action="/compare">
<input type="hidden" name="filtered" value="1">
<div class="filters">
<div>
<label for="treatments">Pilih Treatment Place:</label>
<select id="treatments" name="treatments" multiple>
{{range .Options.TreatmentPlaces}}<option value="{{.}}"{{if selected . $.Selection.Treatments}} selected{{end}}>{{.}}</option>
{{end}}</select>
</div>
<div>
<label for="providers">Pilih Group Provider:</label>
<select id="providers" name="providers" multiple>
{{range .Options.GroupProviders}}<option value="{{.}}"{{if selected . $.Selection.Providers}} selected{{end}}>{{.}}</option>
{{end}}</select>
</div>
</div>
<div class="actions">
<button type="submit" formmethod="get" formaction="/">Perbarui Filter</button>
<button type="submit" class="primary">Tampilkan Perbandingan</button>
</div>
</form>
{{if eq .State "rendered"}}<div class="notice info" id="idle-notice" hidden>{{idleInstruction}}</div>
{{end}}<div id="results">
{{range .Notices}}<div class="notice {{.Level}}">{{.Message}}</div>
{{end}}{{if .Tabs}}<h2>Perbandingan Data</h2>
<div class="tabs">
{{range $i, $tab := .Tabs}}<input type="radio" name="tab" id="tab-{{$i}}"{{if eq $i 0}} checked{{end}}><label for="tab-{{$i}}">{{$tab.Label}}</label>
{{end}}{{range $i, $tab := .Tabs}}<section class="tab-panel" id="panel-{{$i}}">
{{if $tab.Notice}}<div class="notice {{$tab.Notice.Level}}">{{$tab.Notice.Message}}</div>
{{else}}<h3>Tabel Data ({{$tab.Label}})</h3>
<table>
<thead><tr><th>TreatmentPlace</th><th>GroupProvider</th><th>Nama Item Garda Medika</th><th>Qty</th><th>Amount Bill</th></tr></thead>
<tbody>
{{range $tab.Rows}}<tr><td>{{.TreatmentPlace}}</td><td>{{.GroupProvider}}</td><td>{{.ItemName}}</td><td class="num">{{cell .Qty}}</td><td class="num">{{cell .AmountBill}}</td></tr>
{{end}}</tbody>
</table>
<p><strong>Total Records:</strong> {{$tab.RecordCount}}</p>
<p><strong>Total Amount Bill:</strong> {{$tab.FormattedTotal}}</p>
{{if $tab.WordCloudURL}}<h3>WordCloud ({{$tab.Label}})</h3>
<img class="wordcloud" src="{{$tab.WordCloudURL}}" alt="WordCloud {{$tab.Label}}" width="800" height="400">
{{else}}<div class="notice warning">Tidak ada item untuk membuat WordCloud.</div>
{{end}}{{end}}</section>
{{end}}</div>
{{end}}</div>
<script src="{{scriptPath}}" defer></script>
</body>
</html>
`

// DashboardScriptPath serves dashboardScript from the same origin
const DashboardScriptPath = "/static/dashboard.js"

// dashboardScript drops rendered results as soon as either multi-select
// changes, so tabs never sit next to a selection they were not built for.
const dashboardScript = `(function () {
  "use strict";
  function reset() {
    var results = document.getElementById("results");
    var notice = document.getElementById("idle-notice");
    if (!notice || !results) {
      return;
    }
    results.hidden = true;
    notice.hidden = false;
  }
  document.addEventListener("DOMContentLoaded", function () {
    var selects = document.querySelectorAll("form select");
    for (var i = 0; i < selects.length; i++) {
      selects[i].addEventListener("change", reset);
    }
  });
})();
`
