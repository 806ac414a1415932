package htmlquote

const pageWithRoles = `<!DOCTYPE html>
<html lang="en-US">
<head><meta charset="utf-8"><title>Gold Price - Bank of Taiwan</title></head>
<body>
<div class="container">
  <div class="pull-left trailer text-info">
    Quoted Time <span class="time">2026/10/16 15:57</span>
  </div>
  <table class="table table-striped table-bordered table-condensed table-hover" title="牌告匯率">
    <thead>
      <tr><th>Currency</th><th>Bank Selling</th><th>Bank Buying</th></tr>
    </thead>
    <tbody>
      <tr>
        <td data-table="Currency" class="text-left">Gold Passbook (1 Gram)</td>
        <td data-table="Bank Selling" class="text-right"> 2,955 </td>
        <td data-table="Bank Buying" class="text-right">2,922</td>
      </tr>
      <tr>
        <td data-table="Currency" class="text-left">Gold Bullion (1 Kilogram)</td>
        <td data-table="Bank Selling" class="text-right">3,010,000</td>
        <td data-table="Bank Buying" class="text-right">-</td>
      </tr>
    </tbody>
  </table>
</div>
</body>
</html>`

// Same row without role attributes and with the label wrapped in a span.
const pageWithoutRoles = `<html><body>
<span class="time">2026/10/16 15:57</span>
<table><tbody>
  <tr>
    <td><span><a href="#">Gold Passbook</a></span></td>
    <td>2,955</td>
    <td>2,922</td>
  </tr>
</tbody></table>
</body></html>`

const pageRolesSwapped = `<html><body>
<table><tbody>
  <tr>
    <td>Gold Passbook</td>
    <td data-table="Bank Buying">2,922</td>
    <td data-table="Bank Selling">2,955</td>
  </tr>
</tbody></table>
</body></html>`

const pageUnreadableSelling = `<html><body>
<span class="time">2026/10/16 15:57</span>
<table><tr>
  <td data-table="Currency">Gold Passbook</td>
  <td data-table="Bank Selling">N/A</td>
  <td data-table="Bank Buying">2,922.5</td>
</tr></table>
</body></html>`

const pageShortRow = `<html><body>
<table><tr>
  <td>Gold Passbook</td>
  <td data-table="Bank Buying">2,922</td>
</tr></table>
</body></html>`

const pageWithoutLabel = `<html><body>
<span class="time">2026/10/16 15:57</span>
<table><tr><td>Gold Bullion</td><td>3,010,000</td><td>3,000,000</td></tr></table>
</body></html>`

const pageLabelOutsideTable = `<html><body>
<h1>Gold Passbook</h1>
<p>Quotation temporarily unavailable.</p>
</body></html>`
