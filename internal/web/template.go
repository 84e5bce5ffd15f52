package web

import "html/template"

func pageTemplate() *template.Template {
	return template.Must(template.New("page").Parse(pageHTML))
}

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>SEC Parser Output Visualizer</title>
<style>
:root {
  --bg: #fff; --fg: #1a1a2e; --card-bg: #f8f9fa; --border: #dee2e6;
  --hover: #e9ecef; --muted: #6c757d; --accent: #0d6efd;
  --ok-bg: #d1e7dd; --ok-fg: #0f5132;
  --err-bg: #f8d7da; --err-fg: #842029;
  --info-bg: #cff4fc; --info-fg: #055160;
}
* { box-sizing: border-box; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: var(--bg); color: var(--fg); line-height: 1.5; margin: 0; display: grid; grid-template-columns: 330px 1fr; min-height: 100vh; }
aside { background: var(--card-bg); border-right: 1px solid var(--border); padding: 1rem; }
main { padding: 1rem 1.5rem; min-width: 0; }
h1 { font-size: 1.25rem; margin: 0 0 .75rem; }
h2 { font-size: 1rem; margin: 1.25rem 0 .5rem; }
label { display: block; font-size: .8125rem; margin: .5rem 0 .125rem; }
input[type=text], input[type=password], input[type=number], textarea, select { width: 100%; padding: .375rem .5rem; border: 1px solid var(--border); border-radius: 4px; background: var(--bg); color: var(--fg); font-size: .8125rem; }
textarea { min-height: 90px; }
button { padding: .375rem .75rem; border: 1px solid var(--accent); border-radius: 4px; background: var(--accent); color: #fff; font-size: .8125rem; cursor: pointer; margin-top: .5rem; }
.choice { display: flex; gap: .75rem; align-items: center; }
.choice label { display: inline-flex; gap: .25rem; align-items: center; margin: .25rem 0; }
.help { font-size: .75rem; color: var(--muted); margin: .25rem 0; }
.help p { margin: .25rem 0; }
.steps { display: flex; gap: .75rem; margin-bottom: 1rem; }
.step { flex: 1; border: 1px solid var(--border); border-radius: 8px; padding: .5rem .75rem; text-decoration: none; color: var(--fg); background: var(--card-bg); }
.step.active { border-color: var(--accent); box-shadow: 0 0 0 1px var(--accent); }
.step .num { color: var(--accent); font-weight: 700; margin-right: .375rem; }
.step .caption { display: block; font-size: .75rem; color: var(--muted); }
.banner { border-radius: 6px; padding: .625rem .875rem; margin-bottom: 1rem; font-size: .875rem; white-space: pre-line; }
.banner.ok { background: var(--ok-bg); color: var(--ok-fg); }
.banner.err { background: var(--err-bg); color: var(--err-fg); }
.banner.info { background: var(--info-bg); color: var(--info-fg); }
details { border: 1px solid var(--border); border-radius: 6px; margin-bottom: .5rem; background: var(--bg); }
details > summary { cursor: pointer; padding: .375rem .625rem; font-size: .8125rem; background: var(--card-bg); border-radius: 6px; }
details[open] > summary { border-bottom: 1px solid var(--border); border-radius: 6px 6px 0 0; }
details > div.body { padding: .625rem; overflow-x: auto; }
details details { margin: .375rem 0 .375rem .875rem; }
.buttons { display: flex; gap: .5rem; justify-content: flex-end; margin: .25rem 0 .5rem; }
.buttons.start { justify-content: flex-start; }
.buttons a { font-size: .75rem; color: var(--accent); text-decoration: none; border: 1px solid var(--border); border-radius: 999px; padding: .125rem .625rem; }
.cols { display: grid; gap: 1rem; }
.pagination { display: flex; flex-wrap: wrap; gap: .375rem; align-items: center; margin: .75rem 0; font-size: .8125rem; }
.pagination a, .pagination span.cur { border: 1px solid var(--border); border-radius: 999px; min-width: 1.75rem; text-align: center; padding: .125rem .375rem; text-decoration: none; color: var(--fg); }
.pagination span.cur { background: var(--accent); border-color: var(--accent); color: #fff; }
.pagination .total { color: var(--muted); margin-left: .5rem; }
.browser { display: grid; grid-template-columns: 1fr 2fr; gap: 1rem; }
.tree { list-style: none; padding-left: 1rem; margin: .25rem 0; font-size: .8125rem; }
.tree a { text-decoration: none; color: var(--fg); }
.tree a.selected { color: var(--accent); font-weight: 700; }
.tree .tag { color: var(--muted); font-size: .6875rem; border: 1px solid var(--border); border-radius: 999px; padding: 0 .375rem; margin-left: .25rem; }
.tree .icon { color: var(--muted); font-size: .6875rem; margin-right: .25rem; }
pre { background: var(--card-bg); border: 1px solid var(--border); border-radius: 6px; padding: .625rem; overflow-x: auto; font-size: .75rem; }
.filing { overflow-x: auto; }
.filing table { border-collapse: collapse; }
</style>
</head>
<body>
<aside>
<h1>&#127974; SEC Parser Output Visualizer</h1>

{{if .ShowKeyForm}}
<details{{if not .State.Tickers}} open{{end}}>
  <summary>API Key</summary>
  <div class="body">
    <div class="help">{{index .Help "apiKey"}}</div>
    <form method="post" action="/session/key">
      <label for="api_key">Enter your API key:</label>
      <input type="password" id="api_key" name="api_key" autocomplete="off">
      <input type="hidden" name="return" value="{{.ReturnURL}}">
      <button type="submit">Save</button>
    </form>
    <details>
      <summary>Why do I need an API key?</summary>
      <div class="body help">{{index .Help "apiKeyWhy"}}</div>
    </details>
    <div class="help">{{index .Help "apiKeyEnv"}}</div>
  </div>
</details>
{{end}}

<form id="controls" method="get" action="/">
<input type="hidden" name="step" value="{{.State.Step}}">

<h2>Choose Reports</h2>
<div class="choice">
  <label><input type="radio" name="source" value="tickers"{{if eq .State.Source "tickers"}} checked{{end}}> Ticker symbols</label>
  <label><input type="radio" name="source" value="urls"{{if eq .State.Source "urls"}} checked{{end}}> URLs</label>
</div>
{{if eq .State.Source "tickers"}}
<label for="tickers">Tickers:</label>
<input type="text" id="tickers" name="tickers" value="{{.TickersValue}}" placeholder="AAPL">
<div class="help">{{index .Help "tickers"}}</div>
{{else}}
<label for="urls">Enter URLs (one per line)</label>
<textarea id="urls" name="urls" placeholder="https://www.sec.gov/Archives/edgar/data/320193/000032019323000077/aapl-20230701.htm">{{.URLsValue}}</textarea>
{{end}}
<label>Select Report Sections</label>
<div class="choice">
  <label><input type="radio" name="sections" value="mda"{{if not .State.AllSections}} checked{{end}}> Only MD&amp;A</label>
  <label><input type="radio" name="sections" value="all"{{if .State.AllSections}} checked{{end}}> All Report Sections</label>
</div>
<div class="help">{{index .Help "sections"}}</div>

{{if .ShowViewOptions}}
<h2>View Options</h2>
<label>Filter Semantic Element types</label>
<input type="hidden" name="kinds" value="">
{{range .FilterOptions}}
<label class="choice"><input type="checkbox" name="kinds" value="{{.Value}}"{{if .Selected}} checked{{end}}> {{.Label}}</label>
{{end}}
<div class="help">{{index .Help "elements"}}</div>

<label for="contents">Show Contents</label>
<select id="contents" name="contents">
  <option value="rendered"{{if eq .State.Contents "rendered"}} selected{{end}}>Original</option>
  <option value="code"{{if eq .State.Contents "code"}} selected{{end}}>HTML Code</option>
  <option value="markdown"{{if eq .State.Contents "markdown"}} selected{{end}}>Markdown</option>
</select>

<input type="hidden" name="expand" value="0">
<label class="choice"><input type="checkbox" name="expand" value="1"{{if .State.ExpandAll}} checked{{end}}> Expand All</label>

{{if .ShowColumns}}
<label for="cols">Number of Columns</label>
<input type="number" id="cols" name="cols" min="1" value="{{.ColumnsValue}}">
<label for="pagesize">Set Page Size</label>
<input type="number" id="pagesize" name="pagesize" min="0" value="{{.PageSizeValue}}">
<div class="help">{{index .Help "pageSize"}}</div>
{{end}}

{{if .ShowInterleave}}
<input type="hidden" name="interleave" value="0">
<label class="choice"><input type="checkbox" name="interleave" value="1"{{if .State.Interleave}} checked{{end}}> Interleave</label>
<div class="help">{{index .Help "interleave"}}</div>
{{end}}

{{if eq .State.Step 3}}
<label class="choice"><input type="checkbox" name="view" value="merged"{{if .State.MergedView}} checked{{end}}> Merged view</label>
{{if .State.MergedView}}
<label for="depth">Expand Depth</label>
<input type="number" id="depth" name="depth" min="-1" value="{{.State.ExpandDepth}}">
{{else}}
<label for="tag">Label contents</label>
<select id="tag" name="tag">
  <option value="length"{{if eq .State.TagMode 1}} selected{{end}}>Text Length</option>
  <option value="index"{{if eq .State.TagMode 0}} selected{{end}}>Index</option>
</select>
{{end}}
{{end}}
{{end}}

<button type="submit">Apply</button>
</form>
</aside>

<main>
<nav class="steps">
{{range .Steps}}
  <a class="step{{if .Active}} active{{end}}" href="{{.URL}}"><span class="num">{{.Num}}</span>{{.Title}}<span class="caption">{{.Caption}}</span></a>
{{end}}
</nav>

{{if .Error}}<div class="banner err"><strong>Error</strong>: {{.Error}}</div>{{end}}
{{if .Info}}<div class="banner info">{{.Info}}</div>{{end}}
{{if and .Welcome (not .Error) (not .Info)}}
<div class="banner ok">Welcome! The original, unprocessed SEC EDGAR document is displayed below.

To start processing, please select a parsing step.</div>
{{end}}

{{range .Panels}}
<details{{if .Open}} open{{end}}>
  <summary>{{.Label}}</summary>
  <div class="body">
    <div class="buttons">{{range .Buttons}}<a href="{{.Href}}" target="_blank" rel="noopener">&#128279; {{.Label}}</a>{{end}}</div>
    {{if .Body}}<div class="filing">{{.Body}}</div>{{end}}
    {{range .Nodes}}{{template "panelnode" .}}{{end}}
  </div>
</details>
{{end}}

{{if .Pagination}}
<div class="pagination">
  {{if .Pagination.Prev}}<a href="{{.Pagination.Prev}}">&lsaquo;</a>{{end}}
  {{range .Pagination.Links}}{{if .Current}}<span class="cur">{{.Num}}</span>{{else}}<a href="{{.URL}}">{{.Num}}</a>{{end}}{{end}}
  {{if .Pagination.Next}}<a href="{{.Pagination.Next}}">&rsaquo;</a>{{end}}
  <span class="total">Total: {{.Pagination.Total}}</span>
</div>
{{end}}

{{if .Columns}}
<div class="cols" style="grid-template-columns: repeat({{len .Columns}}, minmax(0, 1fr));">
{{range .Columns}}
  <div>
  {{range .}}
  <details{{if .Open}} open{{end}}>
    <summary>{{.Title}}</summary>
    <div class="body filing">{{.Body}}</div>
  </details>
  {{end}}
  </div>
{{end}}
</div>
{{end}}

{{with .Browser}}
{{if gt (len .Reports) 1}}
<label for="reportsel">Select Report</label>
<select id="reportsel" onchange="location.href=this.value">
{{range .Reports}}<option value="{{.URL}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>{{end}}
</select>
{{end}}
<div class="buttons start">{{range .Buttons}}<a href="{{.Href}}" target="_blank" rel="noopener">&#128279; {{.Label}}</a>{{end}}</div>
<div class="browser">
  <details open>
    <summary>Browser</summary>
    <div class="body">
      <ul class="tree">{{range .Outline}}{{template "outlinenode" .}}{{end}}</ul>
    </div>
  </details>
  <details open>
    <summary>Viewer</summary>
    <div class="body filing">
      {{if .HasSelection}}{{.Viewer}}{{else}}<span class="help">Select an element from the browser to view it here.</span>{{end}}
    </div>
  </details>
</div>
{{end}}

</main>
<script>
document.querySelectorAll('#controls select, #controls input[type=radio], #controls input[type=checkbox]').forEach(function (el) {
  el.addEventListener('change', function () { document.getElementById('controls').submit(); });
});
</script>
</body>
</html>

{{define "panelnode"}}
<details{{if .Open}} open{{end}}>
  <summary>{{.Title}}</summary>
  <div class="body filing">{{.Body}}</div>
  {{range .Children}}{{template "panelnode" .}}{{end}}
</details>
{{end}}

{{define "outlinenode"}}
<li>
  {{if .Children}}
  <details{{if .Open}} open{{end}}>
    <summary><span class="icon">{{.Icon}}</span><a href="{{.URL}}"{{if .Selected}} class="selected"{{end}}>{{.Title}}</a><span class="tag">{{.Tag}}</span></summary>
    <ul class="tree">{{range .Children}}{{template "outlinenode" .}}{{end}}</ul>
  </details>
  {{else}}
  <span class="icon">{{.Icon}}</span><a href="{{.URL}}"{{if .Selected}} class="selected"{{end}}>{{.Title}}</a><span class="tag">{{.Tag}}</span>
  {{end}}
</li>
{{end}}
`
