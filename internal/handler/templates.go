package handler

import "html/template"

// pageTemplate - полная страница "мои короткие ссылки". Три региона движка
// (строки таблицы, навигация, сводка) вставляются уже отрисованными.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>URL Shortener - My Short URLs</title>
    <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css" rel="stylesheet">
    <link href="https://cdn.jsdelivr.net/npm/bootstrap-icons@1.11.3/font/bootstrap-icons.min.css" rel="stylesheet">
    <script src="https://cdn.jsdelivr.net/npm/htmx.org@1.9.12/dist/htmx.min.js"></script>
    <script src="/config.js"></script>
</head>
<body>
<nav class="navbar navbar-expand-lg bg-body-tertiary">
    <div class="container-fluid">
        <a class="navbar-brand" href="/">URL Shortener</a>
        <div class="navbar-nav ms-auto">
            <a class="nav-link" id="apidocs-link" href="{{.APIDocsURL}}" target="_blank">API Docs</a>
            <a class="nav-link" id="logout-link" href="{{.LogoutURL}}">Logout</a>
        </div>
    </div>
</nav>
<div class="container my-4">
    <form id="create-short-url-form" class="row g-2 mb-4" method="post" action="/my-short-urls"
          hx-post="/my-short-urls" hx-swap="none">
        <div class="col-md-6">
            <input type="url" class="form-control" id="create-url-input-url" name="url"
                   placeholder="https://example.com/a/very/long/url" required>
        </div>
        <div class="col-md-4">
            <input type="text" class="form-control" id="create-url-input-desc" name="description"
                   placeholder="Description (optional)">
        </div>
        <div class="col-md-2">
            <button type="submit" class="btn btn-primary w-100">Shorten</button>
        </div>
    </form>
    <table class="table table-hover align-middle" id="my-short-urls">
        <thead>
        <tr>
            <th>ID</th>
            <th>Short URL</th>
            <th>URL</th>
            <th>Description</th>
            <th>Created</th>
            <th>Expires</th>
            <th></th>
        </tr>
        </thead>
        <tbody id="my-short-urls-tbody">{{.Snapshot.List}}</tbody>
    </table>
    <div class="d-flex justify-content-between align-items-center">
        <span id="my-short-urls-pginfo">{{.Snapshot.Summary}}</span>
        <nav aria-label="Short URLs pages">
            <ul class="pagination mb-0" id="my-short-urls-nav">{{.Snapshot.Nav}}</ul>
        </nav>
        <select class="form-select w-auto" id="my-short-urls-pgsize" name="size"
                hx-get="/my-short-urls/table" hx-trigger="change" hx-swap="none">
            {{range .PageSizes}}
            <option value="{{.}}"{{if eq . $.Snapshot.State.Size}} selected{{end}}>{{.}}</option>
            {{end}}
        </select>
    </div>
</div>
<div class="modal fade" id="short-url-delete-modal" tabindex="-1">
    <div class="modal-dialog">
        <div class="modal-content">
            <div class="modal-header">
                <h5 class="modal-title">Delete Short URL</h5>
                <button type="button" class="btn-close" data-bs-dismiss="modal"></button>
            </div>
            <div class="modal-body">
                Delete Short URL <span class="short-url-id"></span>?
            </div>
            <div class="modal-footer">
                <button type="button" class="btn btn-secondary" data-bs-dismiss="modal">Cancel</button>
                <button type="button" class="btn btn-danger" id="short-url-delete"
                        hx-post="/my-short-urls/delete" hx-swap="none" data-bs-dismiss="modal">Delete</button>
            </div>
        </div>
    </div>
</div>
<div id="notifications" class="toast-container position-fixed bottom-0 end-0 p-3"></div>
<script src="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/js/bootstrap.bundle.min.js"></script>
<script>
    // Делегирование кликов по навигации и по иконке удаления на фрагментные
    // эндпоинты; регионы заменяются out-of-band ответом.
    document.getElementById("my-short-urls-nav").addEventListener("click", function (e) {
        const target = e.target.closest(".page-link")
        if (!target || target.closest(".disabled")) return
        e.preventDefault()
        const active = parseInt(document.querySelector("#my-short-urls-nav .active .page-link").textContent) - 1
        let page
        if (target.classList.contains("previous")) page = active - 1
        else if (target.classList.contains("next")) page = active + 1
        else page = parseInt(target.textContent) - 1
        const size = document.getElementById("my-short-urls-pgsize").value
        htmx.ajax("GET", "/my-short-urls/table?page=" + page + "&size=" + size, {swap: "none"})
    })
    document.getElementById("my-short-urls").addEventListener("click", function (e) {
        const link = e.target.closest("a[data-id]")
        if (!link) return
        e.preventDefault()
        const modalEl = document.getElementById("short-url-delete-modal")
        modalEl.getElementsByClassName("short-url-id")[0].textContent = link.dataset.id
        htmx.ajax("POST", "/my-short-urls/" + link.dataset.id + "/delete", {swap: "none"})
        bootstrap.Modal.getOrCreateInstance(modalEl).show()
    })
    document.getElementById("my-short-urls").addEventListener("click", async function (e) {
        const link = e.target.closest("a[data-url]")
        if (!link) return
        e.preventDefault()
        await navigator.clipboard.writeText(link.dataset.url)
    })
</script>
</body>
</html>
`

// fragmentTemplate - ответ фрагментного эндпоинта: три региона заменяются
// out-of-band как одно атомарное обновление, плюс необязательное уведомление.
const fragmentTemplate = `<tbody id="my-short-urls-tbody" hx-swap-oob="true">{{.Snapshot.List}}</tbody>
<ul class="pagination mb-0" id="my-short-urls-nav" hx-swap-oob="true">{{.Snapshot.Nav}}</ul>
<span id="my-short-urls-pginfo" hx-swap-oob="true">{{.Snapshot.Summary}}</span>
{{if .Notice}}<div id="notifications" hx-swap-oob="beforeend">
    <div class="toast fade show bg-white" role="alert" aria-live="assertive" aria-atomic="true">
        <div class="toast-header">
            <strong class="me-auto">URL Shortener</strong>
            <small class="text-body-secondary">Just now</small>
            <button type="button" class="btn-close" data-bs-dismiss="toast" aria-label="Close"></button>
        </div>
        <div class="toast-body">{{.Notice}}</div>
    </div>
</div>{{end}}
`

var (
	pageTmpl     = template.Must(template.New("page").Parse(pageTemplate))
	fragmentTmpl = template.Must(template.New("fragment").Parse(fragmentTemplate))
)
