package gemini

// extractionPrompt instructs the model to return strict JSON matching
// domain.Receipt. Discounts and tax lines are skipped on purpose: only
// product items belong in the pantry.
const extractionPrompt = `You are an expert at extracting structured data from grocery/shopping receipts.

TASK: Extract ALL line items from this receipt image with complete details.

INSTRUCTIONS:
1. Extract item_name (full product name as printed)
2. Extract brand (if visible, else null)
3. Extract size (numeric value only, e.g., 5) — null if not shown
4. Extract unit (kg, g, L, ml, pieces, pack, count) — null if not shown
5. Extract price (total price for this line item, as a number)
6. Calculate price_per_unit = price / size (when both are available, else null)
7. Assign confidence score (0.0 to 1.0) for each item based on text clarity

STORE INFO:
- store_name: Extract store/shop name from header (null if not visible)
- purchase_date: Extract date in YYYY-MM-DD format (null if not visible)
- total_amount: Extract total/grand total amount (null if not visible)
- overall_confidence: Your confidence in the overall extraction (0.0 to 1.0)

SPECIAL HANDLING:
- Hindi/English/regional language mixed text: Translate item names to English
- Blurry or faded text: Use context to infer, set confidence < 0.7
- Missing brand: Set to null (don't guess)
- Abbreviations: Expand when obvious (e.g., "BAS RICE" → "Basmati Rice")
- Duplicate line items: List each separately
- Discount/offer lines: Skip these, only extract product items
- Tax lines (GST, CGST, SGST): Skip these

RETURN ONLY VALID JSON (no markdown, no code blocks):
{
  "store_name": "string or null",
  "purchase_date": "YYYY-MM-DD or null",
  "total_amount": 0.00,
  "overall_confidence": 0.95,
  "items": [
    {
      "item_name": "Fortune Basmati Rice",
      "brand": "Fortune",
      "size": 5,
      "unit": "kg",
      "price": 850.00,
      "price_per_unit": 170.00,
      "confidence": 0.98
    }
  ]
}`
