package web

const indexHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Portfolio Dashboard</title>
<style>
  body { background: #0E1117; color: #E0E0E0; font-family: ui-monospace, monospace; margin: 0; padding: 24px; }
  h1, h2 { color: #33FF9C; }
  table { border-collapse: collapse; margin-bottom: 24px; min-width: 420px; }
  th, td { text-align: left; padding: 6px 14px; border-bottom: 1px solid #383838; }
  th { color: #009EFF; }
  .total { color: #FFD43B; font-weight: bold; }
  #mode { color: #FF5C5C; }
</style>
</head>
<body>
<h1>Portfolio Dashboard</h1>
<p>mode: <span id="mode">-</span></p>

<h2>Prices</h2>
<table><thead><tr><th>Pair</th><th>Price</th></tr></thead><tbody id="prices"></tbody></table>

<h2>Portfolio</h2>
<table><thead><tr><th>Asset</th><th>Quantity</th><th>Price</th><th>Value</th></tr></thead><tbody id="assets"></tbody></table>
<p class="total">Total: <span id="total">-</span> <span id="quote"></span></p>

<script>
function row(cells) {
  return '<tr>' + cells.map(function (c) { return '<td>' + c + '</td>'; }).join('') + '</tr>';
}

function renderPortfolio(snapshot) {
  document.getElementById('mode').textContent = snapshot.mode;
  document.getElementById('total').textContent = snapshot.total;
  document.getElementById('quote').textContent = snapshot.quote;
  document.getElementById('assets').innerHTML = (snapshot.assets || []).map(function (a) {
    return row([a.asset, a.quantity, a.price, a.value]);
  }).join('');
}

fetch('/api/prices').then(function (r) { return r.json(); }).then(function (quotes) {
  document.getElementById('prices').innerHTML = quotes.map(function (q) {
    return row([q.pair, q.price]);
  }).join('');
});

fetch('/api/portfolio').then(function (r) { return r.json(); }).then(renderPortfolio);

var stream = new EventSource('/portfolio/stream');
stream.addEventListener('portfolio', function (event) {
  renderPortfolio(JSON.parse(event.data));
});
</script>
</body>
</html>
`
