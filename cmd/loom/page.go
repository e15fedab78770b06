package main

import (
	"html/template"
	"io"
)

// pageTmpl is the demo page shell: the server-side rendered initial frame
// plus a small client that mirrors live frames and title changes from the
// websocket session.
var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; max-width: 40rem; margin: 2rem auto; }
.counter { margin: 1rem 0; padding: 1rem; border: 1px solid #ddd; }
button { padding: 0.4rem 1rem; }
</style>
</head>
<body>
<div id="app">{{.Body}}</div>
<script>
(function () {
  var proto = location.protocol === "https:" ? "wss:" : "ws:";
  var ws = new WebSocket(proto + "//" + location.host + "/ws");
  ws.onmessage = function (ev) {
    var msg = JSON.parse(ev.data);
    if (msg.type === "frame") {
      document.getElementById("app").innerHTML = msg.html;
    } else if (msg.type === "title") {
      document.title = msg.title;
    }
  };
  document.addEventListener("click", function (ev) {
    var el = ev.target.closest("[data-loom-click]");
    if (el && ws.readyState === WebSocket.OPEN) {
      ws.send(JSON.stringify({ type: "click", id: el.getAttribute("data-loom-click") }));
    }
  });
})();
</script>
</body>
</html>
`))

// writePage renders the page shell around an already-serialized body.
func writePage(w io.Writer, title, body string) {
	_ = pageTmpl.Execute(w, struct {
		Title string
		Body  template.HTML
	}{
		Title: title,
		Body:  template.HTML(body),
	})
}
