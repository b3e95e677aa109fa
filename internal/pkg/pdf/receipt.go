// internal/pkg/pdf/receipt.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/restaurant-backend/internal/config"
	"github.com/your-org/restaurant-backend/internal/domain/order"
	"github.com/your-org/restaurant-backend/internal/pkg/whatsapp"
)

// Service handles PDF generation
type Service struct {
	config *config.Config
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// GenerateReceipt generates a PDF receipt for an order
func (s *Service) GenerateReceipt(o *order.Order) (*bytes.Buffer, error) {
	data := ReceiptData{
		Order:     o,
		IssueDate: o.CreatedAt.Format("02/01/2006 15:04"),
		Restaurant: RestaurantInfo{
			Name:    s.config.Restaurant.Name,
			Address: s.config.Restaurant.Address,
			Phone:   s.config.Restaurant.Phone,
		},
	}

	htmlContent, err := s.generateHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(false)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

// generateHTML generates HTML content from template
func (s *Service) generateHTML(data ReceiptData) (string, error) {
	tmpl := template.Must(template.New("receipt").Funcs(template.FuncMap{
		"brl": whatsapp.FormatBRL,
	}).Parse(receiptTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// ReceiptData represents the data passed to the receipt template
type ReceiptData struct {
	Order      *order.Order   `json:"order"`
	IssueDate  string         `json:"issue_date"`
	Restaurant RestaurantInfo `json:"restaurant"`
}

// RestaurantInfo represents restaurant information
type RestaurantInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// Receipt HTML template
const receiptTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Pedido {{.Order.DisplayCode}}</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            margin: 0;
            padding: 20px;
            color: #333;
        }
        .header {
            display: flex;
            justify-content: space-between;
            margin-bottom: 30px;
            border-bottom: 2px solid #eee;
            padding-bottom: 20px;
        }
        .restaurant-info {
            flex: 1;
        }
        .receipt-info {
            text-align: right;
            flex: 1;
        }
        .receipt-title {
            font-size: 28px;
            font-weight: bold;
            color: #c2410c;
            margin-bottom: 10px;
        }
        .customer-delivery {
            display: flex;
            justify-content: space-between;
            margin-bottom: 30px;
        }
        .customer-info, .delivery-info {
            flex: 1;
            margin-right: 20px;
        }
        .section-title {
            font-size: 16px;
            font-weight: bold;
            margin-bottom: 10px;
            color: #374151;
        }
        .items-table {
            width: 100%;
            border-collapse: collapse;
            margin-bottom: 30px;
        }
        .items-table th,
        .items-table td {
            border: 1px solid #ddd;
            padding: 12px 8px;
            text-align: left;
        }
        .items-table th {
            background-color: #f8f9fa;
            font-weight: bold;
        }
        .items-table .qty-col,
        .items-table .price-col,
        .items-table .total-col {
            text-align: right;
            width: 90px;
        }
        .totals {
            float: right;
            width: 300px;
        }
        .totals table {
            width: 100%;
            border-collapse: collapse;
        }
        .totals td {
            padding: 8px;
            border-bottom: 1px solid #eee;
        }
        .totals .label {
            text-align: right;
            font-weight: bold;
        }
        .totals .amount {
            text-align: right;
            width: 110px;
        }
        .total-row {
            font-size: 18px;
            font-weight: bold;
            border-top: 2px solid #333 !important;
        }
        .footer {
            margin-top: 50px;
            padding-top: 20px;
            border-top: 1px solid #eee;
            text-align: center;
            color: #666;
            font-size: 12px;
        }
        .status-badge {
            display: inline-block;
            padding: 4px 8px;
            border-radius: 4px;
            font-size: 12px;
            font-weight: bold;
            text-transform: uppercase;
            background-color: #fef3c7;
            color: #92400e;
        }
    </style>
</head>
<body>
    <div class="header">
        <div class="restaurant-info">
            <h1>{{.Restaurant.Name}}</h1>
            <p>{{.Restaurant.Address}}</p>
            <p>Telefone: {{.Restaurant.Phone}}</p>
        </div>
        <div class="receipt-info">
            <div class="receipt-title">PEDIDO</div>
            <p><strong>Código:</strong> {{.Order.DisplayCode}}</p>
            <p><strong>Data:</strong> {{.IssueDate}}</p>
            <p><span class="status-badge">{{.Order.Status}}</span></p>
        </div>
    </div>

    <div class="customer-delivery">
        <div class="customer-info">
            <div class="section-title">Cliente:</div>
            <p><strong>{{.Order.CustomerName}}</strong></p>
            <p>Telefone: {{.Order.CustomerPhone}}</p>
        </div>
        <div class="delivery-info">
            <div class="section-title">Entrega:</div>
            <p>{{.Order.Address.Street}}, {{.Order.Address.Number}}</p>
            {{if .Order.Address.Complement}}<p>{{.Order.Address.Complement}}</p>{{end}}
            <p>{{.Order.Address.Neighborhood}}</p>
            <p>{{.Order.Address.City}} - {{.Order.Address.State}}</p>
            {{if .Order.Address.PostalCode}}<p>CEP: {{.Order.Address.PostalCode}}</p>{{end}}
        </div>
    </div>

    <table class="items-table">
        <thead>
            <tr>
                <th>Item</th>
                <th class="qty-col">Qtd</th>
                <th class="price-col">Unitário</th>
                <th class="total-col">Total</th>
            </tr>
        </thead>
        <tbody>
            {{range .Order.Items}}
            <tr>
                <td>
                    <strong>{{.ProductName}}</strong>
                    {{range .SelectedOptions}}<br><small>+ {{.Name}}</small>{{end}}
                    {{if .Notes}}<br><small>Obs: {{.Notes}}</small>{{end}}
                </td>
                <td class="qty-col">{{.Quantity}}</td>
                <td class="price-col">{{brl .UnitPrice}}</td>
                <td class="total-col">{{brl .LineTotal}}</td>
            </tr>
            {{end}}
        </tbody>
    </table>

    <div class="totals">
        <table>
            <tr>
                <td class="label">Subtotal:</td>
                <td class="amount">{{brl .Order.Subtotal}}</td>
            </tr>
            <tr>
                <td class="label">Taxa de entrega:</td>
                <td class="amount">{{brl .Order.DeliveryFee}}</td>
            </tr>
            <tr class="total-row">
                <td class="label">Total:</td>
                <td class="amount">{{brl .Order.Total}}</td>
            </tr>
        </table>
    </div>

    <div style="clear: both;"></div>

    <div class="footer">
        <p>Obrigado pela preferência!</p>
        <p>Dúvidas? Fale com a gente em {{.Restaurant.Phone}}</p>
    </div>
</body>
</html>
`
