package render

// fragmentTemplates are the reusable pieces rendered on their own by the
// fragment functions and embedded into pages as template.HTML.
const fragmentTemplates = `
{{define "sidebar"}}<ul id="lesson-list" class="lesson-list">
{{- range .}}
<li><a href="{{.URL}}"{{if .Class}} class="{{.Class}}"{{end}}{{if .Active}} aria-current="page"{{end}}>{{.Title}}</a></li>
{{- end}}
</ul>{{end}}

{{define "prevnext"}}<nav class="lesson-nav">
{{- if .Prev}}
<a id="prev-link" class="btn" href="{{.Prev}}">&larr; Previous</a>
{{- end}}
{{- if .Next}}
<a id="next-link" class="btn" href="{{.Next}}">Next &rarr;</a>
{{- end}}
</nav>{{end}}

{{define "toggle"}}<form class="inline-form" method="post" action="{{.Action}}">
<button id="completed-toggle" type="submit" class="btn small ghost" aria-pressed="{{.Pressed}}">{{.Label}}</button>
</form>{{end}}

{{define "toc"}}<nav class="toc" aria-label="On this page"><ul>
{{- range .}}
<li class="toc-level-{{.Level}}"><a href="#{{.ID}}">{{.Text}}</a></li>
{{- end}}
</ul></nav>{{end}}

{{define "card"}}<article class="card">
<div class="meta">{{.Level}}{{if .Tags}} &bull; {{join .Tags ", "}}{{end}}</div>
<h3><a href="{{.URL}}">{{.Title}}</a></h3>
<p>{{.Description}}</p>
<div class="tags">{{range .Tags}}<span class="tag">{{.}}</span>{{end}}</div>
<details>
<summary>Show example</summary>
<pre><code>{{.Code}}</code></pre>
</details>
</article>{{end}}

{{define "cardlist"}}<div id="tutorial-list">
{{- if .}}
{{- range .}}
{{template "card" .}}
{{- end}}
{{- else}}
<div class="empty">No tutorials found.</div>
{{- end}}
</div>{{end}}

{{define "groups"}}<div id="groups">
{{- range .}}
<section class="group">
<h2>{{.Label}}</h2>
<div class="grid">
{{- range .Cards}}
<a class="card card-link" href="{{.URL}}">
<div class="meta">{{.Level}}</div>
<h3>{{.Title}}</h3>
<p>{{.Description}}</p>
</a>
{{- end}}
</div>
</section>
{{- end}}
</div>{{end}}
`

// layoutTemplate wraps every page. Each page template defines "content".
const layoutTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}} - {{.SiteName}}</title>
<link rel="stylesheet" href="{{.StyleURL}}">
</head>
<body{{if .Theme.RootClass}} class="{{.Theme.RootClass}}"{{end}} data-scroll-offset="{{.ScrollOffset}}" data-scroll-top="{{.ScrollTopThreshold}}">
<header class="site-header">
<a class="brand" href="{{.HomeURL}}">{{.SiteName}}</a>
<nav class="site-nav">
<a href="{{.TutorialsURL}}">Tutorials</a>
<a href="{{.GroupsURL}}">By language</a>
</nav>
{{if .ThemeAction}}<form class="inline-form" method="post" action="{{.ThemeAction}}">{{end -}}
<button id="darkModeToggle" type="{{if .ThemeAction}}submit{{else}}button{{end}}" class="btn small ghost" aria-pressed="{{.Theme.Pressed}}">{{.Theme.Label}}</button>
{{- if .ThemeAction}}</form>{{end}}
</header>
<main>
{{template "content" .}}
</main>
<button id="scrollTopBtn" class="scroll-top{{if .ScrollTopShown}} show{{end}}" type="button" title="Scroll to top" aria-label="Scroll to top">&uarr;</button>
<script src="{{.ScriptURL}}"></script>
</body>
</html>
`

const homeTemplate = `{{define "content"}}<section class="hero">
<h1>Learn to code, one lesson at a time</h1>
<p>Pick a course or browse the tutorials.</p>
</section>
<section class="courses">
<h2>Courses</h2>
{{- if .Page.Courses}}
<ul class="course-list">
{{- range .Page.Courses}}
<li><a class="card card-link" href="{{.URL}}">{{.ID}}</a></li>
{{- end}}
</ul>
{{- else}}
<div class="empty">No courses available.</div>
{{- end}}
</section>{{end}}`

const lessonTemplate = `{{define "content"}}<div class="course-layout">
<aside class="sidebar">
<h1 id="course-title">{{.Page.CourseTitle}}</h1>
<p id="course-overview">{{.Page.Overview}}</p>
{{.Page.Sidebar}}
</aside>
<article class="lesson">
<div class="lesson-head">
<h2 id="lesson-title">{{.Page.LessonTitle}}</h2>
{{.Page.Toggle}}
</div>
{{.Page.TOC}}
<div id="lesson-body">{{.Page.Body}}</div>
{{.Page.PrevNext}}
</article>
</div>{{end}}`

const tutorialListTemplate = `{{define "content"}}<section class="tutorials">
<h1>Tutorials</h1>
<form class="search" method="get" action="{{.Page.SearchAction}}">
<input id="search" type="search" name="q" value="{{.Page.Query}}" placeholder="Search tutorials" aria-label="Search tutorials">
</form>
{{.Page.List}}
</section>{{end}}`

const tutorialGroupsTemplate = `{{define "content"}}<section class="tutorials">
<h1>Tutorials by language</h1>
{{.Page.Groups}}
</section>{{end}}`

const tutorialDetailTemplate = `{{define "content"}}<article class="tutorial">
<h1 id="title">{{.Page.TutorialTitle}}</h1>
<p id="explanation">{{.Page.Explanation}}</p>
{{- if .Page.HasCode}}
<div class="code-actions"><button id="copyBtn" type="button" class="btn small">Copy</button></div>
<pre id="code"><code class="{{.Page.CodeClass}}" data-highlighter="{{.Page.Highlighter}}">{{.Page.Code}}</code></pre>
{{- end}}
</article>
{{- if .Page.FragmentRedirect}}
<script>
(function(){
  if (!location.search.includes('id=') && location.hash.length > 1) {
    location.replace('?id=' + encodeURIComponent(location.hash.slice(1)));
  }
})();
</script>
{{- end}}{{end}}`
